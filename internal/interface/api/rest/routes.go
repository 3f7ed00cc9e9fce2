package rest

const (
	RouteHome = "/"

	// users
	RouteSignUp        = "/users/signup"
	RouteSignIn        = "/users/signin"
	RouteVerify        = "/users/verify/:id"
	RouteChangePass    = "/users/changepass"
	RouteUpdateProfile = "/users/update"
	RouteHardDelete    = "/users/delete"
	RouteSoftDelete    = "/users/softdelete"
	RouteLogout        = "/users/logout"

	// tasks
	RouteTasks          = "/tasks"
	RouteTasksWithUsers = "/taskswithusers"
	RouteOverdueTasks   = "/overduetasks"

	// ops
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)
