package errors

var (
	// Domain errors used by usecases and repositories
	ErrUserNotFound     = NotFound("user not found")
	ErrGroupNotFound    = NotFound("group not found")
	ErrEdgeExists       = AlreadyExists("a friend request or friendship already exists between these users")
	ErrSelfFriendTarget = InvalidArg("cannot send a friend request to yourself")
	ErrMissingTarget    = InvalidArg("target user id is required")
	ErrMissingGroupName = InvalidArg("group name cannot be empty")
	ErrEmptyMessage     = InvalidArg("message payload cannot be empty")
	ErrInvalidFileRef   = InvalidArg("file reference requires file id, mime type and file name")
	ErrNotAuthenticated = Unauthorized("no authenticated identity for this connection")
	ErrNotGroupMember   = Forbidden("only accepted group members can post")
)

func ErrMessageStoreFailed(cause error) error {
	return Wrap(CodeInternal, "failed to persist message", cause)
}

func ErrGroupCreateFailed(cause error) error {
	return Wrap(CodeInternal, "failed to create group", cause)
}
