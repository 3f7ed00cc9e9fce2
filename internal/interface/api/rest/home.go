package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const homeHTML = `<!DOCTYPE html>
<html>
<head><title>Task Manager API</title></head>
<body style="font-family: Arial, sans-serif; padding: 30px;">
  <h1>Task Manager API</h1>
  <p>The server is up. Sign up via <code>POST /users/signup</code>.</p>
</body>
</html>`

func HomeHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(homeHTML))
}
