// Package social contains RPC wrappers for Social contract.
package social

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
	"unicode/utf8"
)

// SocialComment is a contract-specific social.Comment type used by its methods.
type SocialComment struct {
	Commenter util.Uint160
	Body string
	CreatedAt *big.Int
}

// SocialPostView is a contract-specific social.PostView type used by its methods.
type SocialPostView struct {
	Author util.Uint160
	Body string
	CreatedAt *big.Int
	Likes *big.Int
	Comments *big.Int
}

// SocialProfile is a contract-specific social.Profile type used by its methods.
type SocialProfile struct {
	Owner util.Uint160
	Handle string
}

// UserRegisteredEvent represents "UserRegistered" event emitted by the contract.
type UserRegisteredEvent struct {
	Owner util.Uint160
	Handle string
}

// PostCreatedEvent represents "PostCreated" event emitted by the contract.
type PostCreatedEvent struct {
	Owner util.Uint160
	PostID *big.Int
	Body string
	Timestamp *big.Int
}

// PostLikedEvent represents "PostLiked" event emitted by the contract.
type PostLikedEvent struct {
	Owner util.Uint160
	PostID *big.Int
}

// CommentAddedEvent represents "CommentAdded" event emitted by the contract.
type CommentAddedEvent struct {
	Owner util.Uint160
	PostID *big.Int
	CommentID *big.Int
	Body string
	Timestamp *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetComment invokes `getComment` method of contract.
func (c *ContractReader) GetComment(postID *big.Int, commentID *big.Int) (*SocialComment, error) {
	return itemToSocialComment(unwrap.Item(c.invoker.Call(c.hash, "getComment", postID, commentID)))
}

// GetPost invokes `getPost` method of contract.
func (c *ContractReader) GetPost(postID *big.Int) (*SocialPostView, error) {
	return itemToSocialPostView(unwrap.Item(c.invoker.Call(c.hash, "getPost", postID)))
}

// GetPostsCount invokes `getPostsCount` method of contract.
func (c *ContractReader) GetPostsCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getPostsCount"))
}

// GetProfile invokes `getProfile` method of contract.
func (c *ContractReader) GetProfile(owner util.Uint160) (*SocialProfile, error) {
	return itemToSocialProfile(unwrap.Item(c.invoker.Call(c.hash, "getProfile", owner)))
}

// IsRegistered invokes `isRegistered` method of contract.
func (c *ContractReader) IsRegistered(owner util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "isRegistered", owner))
}

// IterateComments invokes `iterateComments` method of contract.
func (c *ContractReader) IterateComments(postID *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iterateComments", postID))
}

// IterateCommentsExpanded is similar to IterateComments (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IterateCommentsExpanded(postID *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iterateComments", _numOfIteratorItems, postID))
}

// IteratePosts invokes `iteratePosts` method of contract.
func (c *ContractReader) IteratePosts() (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "iteratePosts"))
}

// IteratePostsExpanded is similar to IteratePosts (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) IteratePostsExpanded(_numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "iteratePosts", _numOfIteratorItems))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// AddComment creates a transaction invoking `addComment` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) AddComment(owner util.Uint160, postID *big.Int, body string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "addComment", owner, postID, body)
}

// AddCommentTransaction creates a transaction invoking `addComment` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) AddCommentTransaction(owner util.Uint160, postID *big.Int, body string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "addComment", owner, postID, body)
}

// AddCommentUnsigned creates a transaction invoking `addComment` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) AddCommentUnsigned(owner util.Uint160, postID *big.Int, body string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "addComment", nil, owner, postID, body)
}

// CreatePost creates a transaction invoking `createPost` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreatePost(owner util.Uint160, body string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createPost", owner, body)
}

// CreatePostTransaction creates a transaction invoking `createPost` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreatePostTransaction(owner util.Uint160, body string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createPost", owner, body)
}

// CreatePostUnsigned creates a transaction invoking `createPost` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreatePostUnsigned(owner util.Uint160, body string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createPost", nil, owner, body)
}

// LikePost creates a transaction invoking `likePost` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) LikePost(owner util.Uint160, postID *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "likePost", owner, postID)
}

// LikePostTransaction creates a transaction invoking `likePost` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) LikePostTransaction(owner util.Uint160, postID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "likePost", owner, postID)
}

// LikePostUnsigned creates a transaction invoking `likePost` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) LikePostUnsigned(owner util.Uint160, postID *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "likePost", nil, owner, postID)
}

// Register creates a transaction invoking `register` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Register(owner util.Uint160, handle string) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "register", owner, handle)
}

// RegisterTransaction creates a transaction invoking `register` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) RegisterTransaction(owner util.Uint160, handle string) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "register", owner, handle)
}

// RegisterUnsigned creates a transaction invoking `register` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) RegisterUnsigned(owner util.Uint160, handle string) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "register", nil, owner, handle)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(script []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", script, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", script, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(script []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, script, manifest, data)
}

// itemToSocialComment converts stack item into *SocialComment.
func itemToSocialComment(item stackitem.Item, err error) (*SocialComment, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SocialComment)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SocialComment from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SocialComment) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Commenter, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Commenter: %w", err)
	}

	index++
	res.Body, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Body: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	return nil
}

// itemToSocialPostView converts stack item into *SocialPostView.
func itemToSocialPostView(item stackitem.Item, err error) (*SocialPostView, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SocialPostView)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SocialPostView from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SocialPostView) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Author, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Author: %w", err)
	}

	index++
	res.Body, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Body: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.Likes, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Likes: %w", err)
	}

	index++
	res.Comments, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Comments: %w", err)
	}

	return nil
}

// itemToSocialProfile converts stack item into *SocialProfile.
func itemToSocialProfile(item stackitem.Item, err error) (*SocialProfile, error) {
	if err != nil {
		return nil, err
	}
	var res = new(SocialProfile)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of SocialProfile from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *SocialProfile) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	res.Handle, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Handle: %w", err)
	}

	return nil
}

// UserRegisteredEventsFromApplicationLog retrieves a set of all emitted events
// with "UserRegistered" name from the provided [result.ApplicationLog].
func UserRegisteredEventsFromApplicationLog(log *result.ApplicationLog) ([]*UserRegisteredEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*UserRegisteredEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "UserRegistered" {
				continue
			}
			event := new(UserRegisteredEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize UserRegisteredEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to UserRegisteredEvent or
// returns an error if it's not possible to do to so.
func (e *UserRegisteredEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.Handle, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Handle: %w", err)
	}

	return nil
}

// PostCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PostCreated" name from the provided [result.ApplicationLog].
func PostCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PostCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PostCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PostCreated" {
				continue
			}
			event := new(PostCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PostCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PostCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *PostCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 4 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.PostID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PostID: %w", err)
	}

	index++
	e.Body, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Body: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}

// PostLikedEventsFromApplicationLog retrieves a set of all emitted events
// with "PostLiked" name from the provided [result.ApplicationLog].
func PostLikedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PostLikedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PostLikedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PostLiked" {
				continue
			}
			event := new(PostLikedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PostLikedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PostLikedEvent or
// returns an error if it's not possible to do to so.
func (e *PostLikedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.PostID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PostID: %w", err)
	}

	return nil
}

// CommentAddedEventsFromApplicationLog retrieves a set of all emitted events
// with "CommentAdded" name from the provided [result.ApplicationLog].
func CommentAddedEventsFromApplicationLog(log *result.ApplicationLog) ([]*CommentAddedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*CommentAddedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "CommentAdded" {
				continue
			}
			event := new(CommentAddedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize CommentAddedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to CommentAddedEvent or
// returns an error if it's not possible to do to so.
func (e *CommentAddedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 5 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.PostID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field PostID: %w", err)
	}

	index++
	e.CommentID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CommentID: %w", err)
	}

	index++
	e.Body, err = func (item stackitem.Item) (string, error) {
		b, err := item.TryBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", errors.New("not a UTF-8 string")
		}
		return string(b), nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Body: %w", err)
	}

	index++
	e.Timestamp, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Timestamp: %w", err)
	}

	return nil
}
