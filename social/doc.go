/*
Package social contains implementation of Social contract, an append-only
social-graph ledger deployed as a single Neo N3 contract.

Accounts register a profile once, then publish posts which accrue likes and
threaded comments. Posts and comments are identified by dense sequential
indexes and are never edited or removed; like and comment counters only
grow. Every mutating method is attributed to an owner account and requires
its witness, registration and existence checks guard every mutation and
abort the whole transaction on violation, so a rejected call leaves no trace
in storage and emits nothing.

# Contract notifications

UserRegistered notification. Produced when an account registers a profile.

	UserRegistered:
	  - name: owner
	    type: Hash160
	  - name: handle
	    type: String

PostCreated notification. Produced when a registered account publishes a post.

	PostCreated:
	  - name: owner
	    type: Hash160
	  - name: postID
	    type: Integer
	  - name: body
	    type: String
	  - name: timestamp
	    type: Integer

PostLiked notification. Produced on every successful like, including repeated
likes from the same account.

	PostLiked:
	  - name: owner
	    type: Hash160
	  - name: postID
	    type: Integer

CommentAdded notification. Produced when a registered account comments on an
existing post.

	CommentAdded:
	  - name: owner
	    type: Hash160
	  - name: postID
	    type: Integer
	  - name: commentID
	    type: Integer
	  - name: body
	    type: String
	  - name: timestamp
	    type: Integer
*/
package social

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'i' + owner (20-byte script hash) -> std.Serialize(Profile)
   registered profile of the account
 - 'n' -> int
   length of the post log
 - 'p' + postID (8-byte index) -> std.Serialize(Post)
   immutable post record, postID counted from 0
 - 'l' + postID (8-byte index) -> int
   like counter of the post, missing key means 0
 - 'c' + postID (8-byte index) -> int
   comment counter of the post, missing key means 0
 - 'm' + postID (8-byte index) + commentID (8-byte index) -> std.Serialize(Comment)
   immutable comment record, commentID counted from 0 per post

# Counters
The 'c' counter is the only comment count kept for a post; GetPost reports it
in the returned view, so the count can't diverge from the number of stored
comment records. Index parts of keys are fixed-width big-endian, which keeps
storage.Find prefixes of different kinds disjoint and makes Find traverse
records in index order.
*/
