package social

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/social-contract/common"
)

type (
	// Profile is a registered identity record. It is created once per owner
	// and never changes afterwards.
	Profile struct {
		// Account the profile is registered for.
		Owner interop.Hash160
		// Display name chosen at registration. Not unique across owners.
		Handle string
	}

	// Post is the immutable part of a published post. Like and comment
	// counters are kept under separate storage keys.
	Post struct {
		Author    interop.Hash160
		Body      string
		CreatedAt int
	}

	// Comment is an immutable record attached to a post.
	Comment struct {
		Commenter interop.Hash160
		Body      string
		CreatedAt int
	}

	// PostView is a snapshot of a post combined with its current counters.
	PostView struct {
		Author    interop.Hash160
		Body      string
		CreatedAt int
		Likes     int
		Comments  int
	}
)

const (
	profilePrefix      = 'i'
	postPrefix         = 'p'
	likeCountPrefix    = 'l'
	commentCountPrefix = 'c'
	commentPrefix      = 'm'

	// Post counter key. Its first byte is not shared with any prefix above,
	// the counter value is a plain integer and must not appear in Find ranges.
	postsCountKey = 'n'
)

const (
	// ErrAlreadyRegistered is thrown by Register when the owner already
	// has a profile.
	ErrAlreadyRegistered = "already registered"
	// ErrNotRegistered is thrown by mutating methods invoked by an owner
	// without a profile and by GetProfile for unknown owners.
	ErrNotRegistered = "not registered"
	// ErrEmptyHandle is thrown by Register on an empty handle.
	ErrEmptyHandle = "empty handle"
	// ErrEmptyContent is thrown by CreatePost and AddComment on an empty body.
	ErrEmptyContent = "empty content"
	// ErrPostNotFound is thrown when a post index is out of bounds.
	ErrPostNotFound = "post not found"
	// ErrCommentNotFound is thrown when a comment index is out of bounds
	// for the given post.
	ErrCommentNotFound = "comment not found"
)

// nolint:deadcode,unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("social contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(script []byte, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("social contract updated")
}

// Register creates a profile for the owner account. Each account registers
// at most once and the profile is never removed. Handle text is not required
// to be unique, only non-empty. The call must be witnessed by the owner.
//
// Produces UserRegistered notification.
func Register(owner interop.Hash160, handle string) {
	if len(owner) != interop.Hash160Len {
		panic("incorrect owner script hash")
	}
	common.CheckOwnerWitness(owner)

	if len(handle) == 0 {
		panic(ErrEmptyHandle)
	}

	ctx := storage.GetContext()
	key := profileKey(owner)
	if storage.Get(ctx, key) != nil {
		panic(ErrAlreadyRegistered)
	}

	common.SetSerialized(ctx, key, Profile{
		Owner:  owner,
		Handle: handle,
	})

	runtime.Log("profile registered")
	runtime.Notify("UserRegistered", owner, handle)
}

// CreatePost appends a post authored by the owner to the post log and
// returns its index. Indexes are assigned sequentially starting from zero,
// posts are never moved or removed. The call must be witnessed by the owner
// and the owner must be registered.
//
// Produces PostCreated notification.
func CreatePost(owner interop.Hash160, body string) int {
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	requireRegistered(ctx, owner)

	if len(body) == 0 {
		panic(ErrEmptyContent)
	}

	id := common.GetInt(ctx, []byte{postsCountKey})
	post := Post{
		Author:    owner,
		Body:      body,
		CreatedAt: runtime.GetTime(),
	}

	common.SetSerialized(ctx, indexKey(postPrefix, id), post)
	storage.Put(ctx, []byte{postsCountKey}, id+1)

	runtime.Notify("PostCreated", owner, id, body, post.CreatedAt)
	return id
}

// LikePost increments the like counter of the post. There is no per-account
// guard: repeated likes from the same account are counted again, each
// successful call adds exactly one. The call must be witnessed by the owner
// and the owner must be registered.
//
// Produces PostLiked notification.
func LikePost(owner interop.Hash160, postID int) {
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	requireRegistered(ctx, owner)
	requirePost(ctx, postID)

	key := indexKey(likeCountPrefix, postID)
	storage.Put(ctx, key, common.GetInt(ctx, key)+1)

	runtime.Notify("PostLiked", owner, postID)
}

// AddComment appends a comment to the post and returns the comment index.
// Comment indexes are sequential from zero within their post; the per-post
// comment counter is the single source of truth for the post's comment
// count reported by GetPost. The call must be witnessed by the owner and
// the owner must be registered.
//
// Produces CommentAdded notification.
func AddComment(owner interop.Hash160, postID int, body string) int {
	common.CheckOwnerWitness(owner)

	ctx := storage.GetContext()
	requireRegistered(ctx, owner)
	requirePost(ctx, postID)

	if len(body) == 0 {
		panic(ErrEmptyContent)
	}

	cntKey := indexKey(commentCountPrefix, postID)
	id := common.GetInt(ctx, cntKey)
	comment := Comment{
		Commenter: owner,
		Body:      body,
		CreatedAt: runtime.GetTime(),
	}

	common.SetSerialized(ctx, commentKey(postID, id), comment)
	storage.Put(ctx, cntKey, id+1)

	runtime.Notify("CommentAdded", owner, postID, id, body, comment.CreatedAt)
	return id
}

// GetPost returns a snapshot of the post with its current like and comment
// counters.
func GetPost(postID int) PostView {
	ctx := storage.GetReadOnlyContext()
	requirePost(ctx, postID)

	post := getPost(ctx, postID)
	return PostView{
		Author:    post.Author,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
		Likes:     common.GetInt(ctx, indexKey(likeCountPrefix, postID)),
		Comments:  common.GetInt(ctx, indexKey(commentCountPrefix, postID)),
	}
}

// GetComment returns the stored comment of the post.
func GetComment(postID int, commentID int) Comment {
	ctx := storage.GetReadOnlyContext()
	requirePost(ctx, postID)

	if commentID < 0 || commentID >= common.GetInt(ctx, indexKey(commentCountPrefix, postID)) {
		panic(ErrCommentNotFound)
	}

	data := storage.Get(ctx, commentKey(postID, commentID))
	return std.Deserialize(data.([]byte)).(Comment)
}

// GetPostsCount returns the current length of the post log.
func GetPostsCount() int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, []byte{postsCountKey})
}

// GetProfile returns the profile registered for the owner.
func GetProfile(owner interop.Hash160) Profile {
	ctx := storage.GetReadOnlyContext()

	data := storage.Get(ctx, profileKey(owner))
	if data == nil {
		panic(ErrNotRegistered)
	}

	return std.Deserialize(data.([]byte)).(Profile)
}

// IsRegistered returns true if the owner has a profile.
func IsRegistered(owner interop.Hash160) bool {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, profileKey(owner)) != nil
}

// IteratePosts returns an iterator over all stored posts in index order.
func IteratePosts() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{postPrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// IterateComments returns an iterator over all comments of the post in
// index order.
func IterateComments(postID int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	requirePost(ctx, postID)

	return storage.Find(ctx, indexKey(commentPrefix, postID), storage.ValuesOnly|storage.DeserializeValues)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func requireRegistered(ctx storage.Context, owner interop.Hash160) {
	if storage.Get(ctx, profileKey(owner)) == nil {
		panic(ErrNotRegistered)
	}
}

func requirePost(ctx storage.Context, postID int) {
	if postID < 0 || postID >= common.GetInt(ctx, []byte{postsCountKey}) {
		panic(ErrPostNotFound)
	}
}

func getPost(ctx storage.Context, postID int) Post {
	data := storage.Get(ctx, indexKey(postPrefix, postID))
	return std.Deserialize(data.([]byte)).(Post)
}

func profileKey(owner interop.Hash160) []byte {
	return append([]byte{profilePrefix}, owner...)
}

func indexKey(prefix byte, index int) []byte {
	return append([]byte{prefix}, paddedIndex(index)...)
}

func commentKey(postID int, commentID int) []byte {
	key := append([]byte{commentPrefix}, paddedIndex(postID)...)
	return append(key, paddedIndex(commentID)...)
}

// paddedIndex encodes a non-negative index as a fixed-width big-endian key
// part, lexicographic key order is the numeric index order.
func paddedIndex(index int) []byte {
	raw := convert.ToBytes(index) // Little-endian, variable width.
	for len(raw) < 8 {
		raw = append(raw, 0)
	}
	for i, j := 0, len(raw)-1; i < j; i, j = i+1, j-1 {
		tmp := raw[i]
		raw[i] = raw[j]
		raw[j] = tmp
	}
	return raw
}
