// api/auth_handler.go
package api

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pranav244872/cvreview/token"
	"github.com/pranav244872/cvreview/util"
)

var errInvalidCredentials = errors.New("invalid username or password")

////////////////////////////////////////////////////////////////////////
// Login Endpoint (Public): /auth/login
////////////////////////////////////////////////////////////////////////

// loginAdminRequest defines the expected JSON payload for login.
// Example:
// {
//   "username": "admin",
//   "password": "securepassword"
// }
type loginAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// loginAdminResponse carries the signed JWT for the admin routes.
type loginAdminResponse struct {
	Token string `json:"token"`
}

// loginAdmin checks the configured admin credentials and issues a token.
func (server *Server) loginAdmin(ctx *gin.Context) {
	var req loginAdminRequest

	// Step 1: Bind and validate the request body
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	// Step 2: Without a configured hash nobody can log in
	if server.config.AdminPasswordHash == "" {
		ctx.JSON(http.StatusUnauthorized, errorResponse(errInvalidCredentials))
		return
	}

	// Step 3: Check the username and the password hash
	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(server.config.AdminUsername)) == 1
	passwordErr := util.CheckPasswordHash(req.Password, server.config.AdminPasswordHash)
	if !usernameOK || passwordErr != nil {
		if passwordErr != nil && !errors.Is(passwordErr, util.ErrPasswordMismatch) {
			server.requestLogger(ctx).WithError(passwordErr).Error("Admin password hash is malformed")
		}
		ctx.JSON(http.StatusUnauthorized, errorResponse(errInvalidCredentials))
		return
	}

	// Step 4: Generate a JWT token for the admin
	accessToken, err := server.tokenMaker.CreateToken(
		req.Username,
		token.RoleAdmin,
		server.config.AccessTokenDuration,
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, errorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, loginAdminResponse{Token: accessToken})
}
