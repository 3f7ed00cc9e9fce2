package rest

// User-facing response messages. The 500 message is deliberately fixed
// and generic; the underlying cause is only ever logged server-side.
const (
	MsgServerError      = "Can't complete your request right now, please try again later"
	MsgValidationFailed = "Validation failed"
	MsgInvalidBody      = "Invalid request body"

	MsgUserExists        = "User already exists, please login"
	MsgUserCreated       = "User is successfully created. We sent a verification message to your email, please verify your account"
	MsgSignInBadAccount  = "Email is not correct, or your account has been deleted"
	MsgMustVerify        = "You must verify your account, please check your inbox"
	MsgSignedIn          = "User is successfully logged in"
	MsgPasswordIncorrect = "Password is not correct"
	MsgUserIDInvalid     = "User id is invalid"
	MsgVerified          = "Account is verified successfully, you can login now"
	MsgPasswordUpdated   = "Password is updated successfully"
	MsgUserUpdated       = "User is updated successfully"

	MsgAccountMissing      = "Can't find your account, or your account has been deleted"
	MsgAccountMissingShort = "Can't find your account"
	MsgAccountDeleted      = "Your account has been deleted, please contact support"
	MsgAccountHardDeleted  = "Your account has been deleted"
	MsgAccountSoftDeleted  = "Your account has been soft deleted, please contact support"
	MsgLoggedOut           = "You have successfully logged out"

	MsgTaskAdded          = "The task is added successfully"
	MsgTaskUpdated        = "Task is updated successfully"
	MsgTaskDeleted        = "Task is deleted successfully"
	MsgTaskNotFound       = "Task is not found"
	MsgNoUpdatePermission = "You don't have permission to update this task"
	MsgNoDeletePermission = "You don't have permission to delete this task"
	MsgTasksRetrieved     = "Tasks are retrieved successfully"
	MsgNoTasks            = "There are no tasks found to retrieve"
)
