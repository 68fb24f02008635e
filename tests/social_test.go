package tests

import (
	"path"
	"strconv"
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/social-contract/common"
	"github.com/nspcc-dev/social-contract/social"
	"github.com/stretchr/testify/require"
)

const socialPath = "../social"

func deploySocialContract(t *testing.T, e *neotest.Executor) util.Uint160 {
	c := neotest.CompileFile(t, e.CommitteeHash, socialPath,
		path.Join(socialPath, "config.yml"))

	e.DeployContract(t, c, nil)
	return c.Hash
}

func newSocialInvoker(t *testing.T) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)
	h := deploySocialContract(t, e)
	return e.CommitteeInvoker(h)
}

// newUser creates a fresh account and registers a profile for it.
func newUser(t *testing.T, c *neotest.ContractInvoker, handle string) (neotest.Signer, *neotest.ContractInvoker) {
	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	cAcc.Invoke(t, stackitem.Null{}, "register", acc.ScriptHash(), handle)
	return acc, cAcc
}

func structFields(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	res, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	fields, ok := res.Top().Item().Value().([]stackitem.Item)
	require.True(t, ok)
	return fields
}

func requireBytesField(t *testing.T, fields []stackitem.Item, index int, expected []byte) {
	actual, err := fields[index].TryBytes()
	require.NoError(t, err)
	require.Equal(t, expected, actual)
}

func requireIntField(t *testing.T, fields []stackitem.Item, index int, expected int64) {
	actual, err := fields[index].TryInteger()
	require.NoError(t, err)
	require.Equal(t, expected, actual.Int64())
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

// iterateItems invokes an iterator-returning method and drains the result.
func iterateItems(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	res, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	iter, ok := res.Pop().Value().(*storage.Iterator)
	require.True(t, ok)
	return iteratorToArray(iter)
}

func TestRegister(t *testing.T) {
	c := newSocialInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	owner := acc.ScriptHash()

	// Committee signs the transaction, the owner does not.
	c.InvokeFail(t, common.ErrOwnerWitnessFailed, "register", owner, "alice")
	cAcc.InvokeFail(t, social.ErrEmptyHandle, "register", owner, "")

	c.Invoke(t, stackitem.NewBool(false), "isRegistered", owner)

	h := cAcc.Invoke(t, stackitem.Null{}, "register", owner, "alice")
	aer := cAcc.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "UserRegistered", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(owner.BytesBE()),
		stackitem.NewByteArray([]byte("alice")),
	}), aer.Events[0].Item)

	c.Invoke(t, stackitem.NewBool(true), "isRegistered", owner)

	profile := structFields(t, c, "getProfile", owner)
	require.Equal(t, 2, len(profile))
	requireBytesField(t, profile, 0, owner.BytesBE())
	requireBytesField(t, profile, 1, []byte("alice"))

	cAcc.InvokeFail(t, social.ErrAlreadyRegistered, "register", owner, "alice")
	cAcc.InvokeFail(t, social.ErrAlreadyRegistered, "register", owner, "another")

	// First registration stays intact.
	profile = structFields(t, c, "getProfile", owner)
	requireBytesField(t, profile, 1, []byte("alice"))

	// Handles are not unique across owners.
	acc2 := c.NewAccount(t)
	c.WithSigners(acc2).Invoke(t, stackitem.Null{}, "register", acc2.ScriptHash(), "alice")
}

func TestGetProfileNotRegistered(t *testing.T) {
	c := newSocialInvoker(t)

	acc := c.NewAccount(t)
	c.InvokeFail(t, social.ErrNotRegistered, "getProfile", acc.ScriptHash())
}

func TestCreatePost(t *testing.T) {
	c := newSocialInvoker(t)

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)
	owner := acc.ScriptHash()

	cAcc.InvokeFail(t, social.ErrNotRegistered, "createPost", owner, "hello")
	c.Invoke(t, stackitem.Make(0), "getPostsCount")

	alice, cAlice := newUser(t, c, "alice")
	bob, cBob := newUser(t, c, "bob")

	cAlice.InvokeFail(t, social.ErrEmptyContent, "createPost", alice.ScriptHash(), "")
	c.Invoke(t, stackitem.Make(0), "getPostsCount")

	h := cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")
	aer := cAlice.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "PostCreated", aer.Events[0].Name)

	items := aer.Events[0].Item.Value().([]stackitem.Item)
	require.Equal(t, 4, len(items))
	requireBytesField(t, items, 0, alice.ScriptHash().BytesBE())
	requireIntField(t, items, 1, 0)
	requireBytesField(t, items, 2, []byte("hello"))
	ts, err := items[3].TryInteger()
	require.NoError(t, err)
	require.True(t, ts.Sign() > 0)

	// Post indexes grow by one per post regardless of the author.
	cBob.Invoke(t, stackitem.Make(1), "createPost", bob.ScriptHash(), "second")
	cAlice.Invoke(t, stackitem.Make(2), "createPost", alice.ScriptHash(), "third")
	c.Invoke(t, stackitem.Make(3), "getPostsCount")

	post := structFields(t, c, "getPost", 0)
	require.Equal(t, 5, len(post))
	requireBytesField(t, post, 0, alice.ScriptHash().BytesBE())
	requireBytesField(t, post, 1, []byte("hello"))
	createdAt, err := post[2].TryInteger()
	require.NoError(t, err)
	require.Equal(t, ts, createdAt)
	requireIntField(t, post, 3, 0)
	requireIntField(t, post, 4, 0)
}

func TestLikePost(t *testing.T) {
	c := newSocialInvoker(t)

	alice, cAlice := newUser(t, c, "alice")
	bob, cBob := newUser(t, c, "bob")
	cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, social.ErrNotRegistered, "likePost", acc.ScriptHash(), 0)

	cBob.InvokeFail(t, social.ErrPostNotFound, "likePost", bob.ScriptHash(), 5)
	cBob.InvokeFail(t, social.ErrPostNotFound, "likePost", bob.ScriptHash(), -1)

	h := cBob.Invoke(t, stackitem.Null{}, "likePost", bob.ScriptHash(), 0)
	aer := cBob.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "PostLiked", aer.Events[0].Name)
	require.Equal(t, stackitem.NewArray([]stackitem.Item{
		stackitem.NewByteArray(bob.ScriptHash().BytesBE()),
		stackitem.Make(0),
	}), aer.Events[0].Item)

	// No guard against repeated likes, every call counts.
	cBob.Invoke(t, stackitem.Null{}, "likePost", bob.ScriptHash(), 0)
	cAlice.Invoke(t, stackitem.Null{}, "likePost", alice.ScriptHash(), 0)

	post := structFields(t, c, "getPost", 0)
	requireIntField(t, post, 3, 3)
	requireIntField(t, post, 4, 0)
}

func TestAddComment(t *testing.T) {
	c := newSocialInvoker(t)

	alice, cAlice := newUser(t, c, "alice")
	bob, cBob := newUser(t, c, "bob")
	cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, social.ErrNotRegistered, "addComment", acc.ScriptHash(), 0, "hi")

	cBob.InvokeFail(t, social.ErrPostNotFound, "addComment", bob.ScriptHash(), 1, "hi")
	cBob.InvokeFail(t, social.ErrEmptyContent, "addComment", bob.ScriptHash(), 0, "")

	h := cBob.Invoke(t, stackitem.Make(0), "addComment", bob.ScriptHash(), 0, "nice")
	aer := cBob.CheckHalt(t, h)
	require.Equal(t, 1, len(aer.Events))
	require.Equal(t, "CommentAdded", aer.Events[0].Name)

	items := aer.Events[0].Item.Value().([]stackitem.Item)
	require.Equal(t, 5, len(items))
	requireBytesField(t, items, 0, bob.ScriptHash().BytesBE())
	requireIntField(t, items, 1, 0)
	requireIntField(t, items, 2, 0)
	requireBytesField(t, items, 3, []byte("nice"))

	cAlice.Invoke(t, stackitem.Make(1), "addComment", alice.ScriptHash(), 0, "thanks")
	cBob.Invoke(t, stackitem.Make(2), "addComment", bob.ScriptHash(), 0, "again")

	post := structFields(t, c, "getPost", 0)
	requireIntField(t, post, 4, 3)

	comment := structFields(t, c, "getComment", 0, 0)
	require.Equal(t, 3, len(comment))
	requireBytesField(t, comment, 0, bob.ScriptHash().BytesBE())
	requireBytesField(t, comment, 1, []byte("nice"))

	comment = structFields(t, c, "getComment", 0, 2)
	requireBytesField(t, comment, 1, []byte("again"))

	// Comment indexes are dense, the next one is not assigned yet.
	c.InvokeFail(t, social.ErrCommentNotFound, "getComment", 0, 3)
	c.InvokeFail(t, social.ErrCommentNotFound, "getComment", 0, -1)
	c.InvokeFail(t, social.ErrPostNotFound, "getComment", 1, 0)
}

func TestGetPostNotFound(t *testing.T) {
	c := newSocialInvoker(t)

	c.InvokeFail(t, social.ErrPostNotFound, "getPost", 0)

	alice, cAlice := newUser(t, c, "alice")
	cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")

	c.InvokeFail(t, social.ErrPostNotFound, "getPost", 1)
	c.InvokeFail(t, social.ErrPostNotFound, "getPost", -1)
}

func TestIteratePosts(t *testing.T) {
	c := newSocialInvoker(t)

	require.Empty(t, iterateItems(t, c, "iteratePosts"))

	alice, cAlice := newUser(t, c, "alice")
	cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")
	cAlice.Invoke(t, stackitem.Make(1), "createPost", alice.ScriptHash(), "world")
	cAlice.Invoke(t, stackitem.Null{}, "likePost", alice.ScriptHash(), 0)
	cAlice.Invoke(t, stackitem.Make(0), "addComment", alice.ScriptHash(), 0, "first")

	// Only post records show up, the post counter, like and comment
	// counters and comment records live under other key prefixes.
	items := iterateItems(t, c, "iteratePosts")
	require.Equal(t, 2, len(items))
	for i, body := range []string{"hello", "world"} {
		fields, ok := items[i].Value().([]stackitem.Item)
		require.True(t, ok)
		require.Equal(t, 3, len(fields))
		requireBytesField(t, fields, 0, alice.ScriptHash().BytesBE())
		requireBytesField(t, fields, 1, []byte(body))
	}
}

func TestIteratePostsOrder(t *testing.T) {
	c := newSocialInvoker(t)

	alice, cAlice := newUser(t, c, "alice")

	// Enough posts for the index to outgrow one key byte.
	const total = 260
	for i := 0; i < total; i++ {
		cAlice.Invoke(t, stackitem.Make(i), "createPost", alice.ScriptHash(), "post "+strconv.Itoa(i))
	}

	items := iterateItems(t, c, "iteratePosts")
	require.Equal(t, total, len(items))
	for i := range items {
		fields := items[i].Value().([]stackitem.Item)
		requireBytesField(t, fields, 1, []byte("post "+strconv.Itoa(i)))
	}
}

func TestIterateComments(t *testing.T) {
	c := newSocialInvoker(t)

	alice, cAlice := newUser(t, c, "alice")
	bob, cBob := newUser(t, c, "bob")
	cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")
	cBob.Invoke(t, stackitem.Make(1), "createPost", bob.ScriptHash(), "second")

	_, err := c.TestInvoke(t, "iterateComments", 5)
	require.Error(t, err)

	require.Empty(t, iterateItems(t, c, "iterateComments", 0))

	cBob.Invoke(t, stackitem.Make(0), "addComment", bob.ScriptHash(), 0, "nice")
	cAlice.Invoke(t, stackitem.Make(1), "addComment", alice.ScriptHash(), 0, "thanks")
	cBob.Invoke(t, stackitem.Make(0), "addComment", bob.ScriptHash(), 1, "me too")

	items := iterateItems(t, c, "iterateComments", 0)
	require.Equal(t, 2, len(items))
	requireBytesField(t, items[0].Value().([]stackitem.Item), 1, []byte("nice"))
	requireBytesField(t, items[1].Value().([]stackitem.Item), 1, []byte("thanks"))

	items = iterateItems(t, c, "iterateComments", 1)
	require.Equal(t, 1, len(items))
	requireBytesField(t, items[0].Value().([]stackitem.Item), 0, bob.ScriptHash().BytesBE())
	requireBytesField(t, items[0].Value().([]stackitem.Item), 1, []byte("me too"))
}

func TestScenario(t *testing.T) {
	c := newSocialInvoker(t)

	alice, cAlice := newUser(t, c, "alice")
	bob, cBob := newUser(t, c, "bob")

	cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")
	cBob.Invoke(t, stackitem.Null{}, "likePost", bob.ScriptHash(), 0)
	cBob.Invoke(t, stackitem.Make(0), "addComment", bob.ScriptHash(), 0, "nice")

	c.Invoke(t, stackitem.Make(1), "getPostsCount")

	post := structFields(t, c, "getPost", 0)
	requireBytesField(t, post, 0, alice.ScriptHash().BytesBE())
	requireBytesField(t, post, 1, []byte("hello"))
	requireIntField(t, post, 3, 1)
	requireIntField(t, post, 4, 1)

	comment := structFields(t, c, "getComment", 0, 0)
	requireBytesField(t, comment, 0, bob.ScriptHash().BytesBE())
	requireBytesField(t, comment, 1, []byte("nice"))
}

func TestRejectedCallLeavesNoState(t *testing.T) {
	c := newSocialInvoker(t)

	alice, cAlice := newUser(t, c, "alice")
	cAlice.Invoke(t, stackitem.Make(0), "createPost", alice.ScriptHash(), "hello")

	acc := c.NewAccount(t)
	cAcc := c.WithSigners(acc)

	cAcc.InvokeFail(t, social.ErrNotRegistered, "createPost", acc.ScriptHash(), "spam")
	cAcc.InvokeFail(t, social.ErrNotRegistered, "likePost", acc.ScriptHash(), 0)
	cAcc.InvokeFail(t, social.ErrNotRegistered, "addComment", acc.ScriptHash(), 0, "spam")

	c.Invoke(t, stackitem.Make(1), "getPostsCount")
	c.Invoke(t, stackitem.NewBool(false), "isRegistered", acc.ScriptHash())

	post := structFields(t, c, "getPost", 0)
	requireIntField(t, post, 3, 0)
	requireIntField(t, post, 4, 0)
}

func TestVersion(t *testing.T) {
	c := newSocialInvoker(t)
	c.Invoke(t, stackitem.Make(common.Version), "version")
}

func TestUpdateAccess(t *testing.T) {
	c := newSocialInvoker(t)

	acc := c.NewAccount(t)
	c.WithSigners(acc).InvokeFail(t, "only committee can update contract",
		"update", []byte{}, []byte{}, nil)
}
