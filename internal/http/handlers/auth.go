package handlers

import (
	"net/http"

	"campusride/internal/domain"
	"campusride/internal/http/middleware"
	"campusride/internal/repositories"
	"campusride/internal/services"

	"github.com/gin-gonic/gin"
)

func (a API) authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		DB:         a.DB,
		DriverRepo: repositories.DriverRepo{DB: a.DB},
		UserRepo:   repositories.UserRepo{DB: a.DB},
		AdminRepo:  repositories.AdminRepo{DB: a.DB},
		JWTSecret:  a.Env.JWTSecret,
		RequestID:  middleware.GetRequestID(c),
	}
}

// POST /api/auth/signup
func (a API) Signup(c *gin.Context) {
	var in services.SignupInput
	if !a.bindJSON(c, &in) {
		return
	}

	result, err := a.authService(c).Signup(in)
	if err != nil {
		a.respondDomainError(c, err)
		return
	}

	switch result.UserType {
	case "driver":
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Driver registered successfully",
			"driver":  result.Driver,
		})
	default:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "User registered successfully",
			"user":    result.User,
		})
	}
}

// GET /api/auth/user-exists/:email
func (a API) CheckUserExistence(c *gin.Context) {
	result, err := a.authService(c).CheckUser(c.Param("email"))
	if err != nil {
		a.respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// POST /api/auth/login
func (a API) AdminLogin(c *gin.Context) {
	var in struct {
		AdminName string `json:"admin_name"`
		Password  string `json:"password"`
	}
	if !a.bindJSON(c, &in) {
		return
	}

	token, admin, err := a.authService(c).AdminLogin(in.AdminName, in.Password)
	if err != nil {
		// credential failures surface as 401, not 400
		if domain.IsValidation(err) {
			a.respondError(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		a.respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin": gin.H{
			"admin_id":   admin.AdminID,
			"admin_name": admin.AdminName,
		},
	})
}
