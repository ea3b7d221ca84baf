package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	buyersvc "tienda/internal/service/buyer"
)

type signupRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	IdentityNumber string `json:"identityNumber" binding:"omitempty,dni_nie"`
}

type companySignupRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	Name           string `json:"name"`
	IdentityNumber string `json:"identityNumber" binding:"required,cif"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func signupHandler(svc buyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		b, err := svc.Signup(c.Request.Context(), buyersvc.SignupInput{
			Email:          req.Email,
			Password:       req.Password,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			IdentityNumber: req.IdentityNumber,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func companySignupHandler(svc buyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req companySignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		b, err := svc.Signup(c.Request.Context(), buyersvc.SignupInput{
			Email:          req.Email,
			Password:       req.Password,
			FirstName:      req.Name,
			IdentityNumber: req.IdentityNumber,
			Company:        true,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, b)
	}
}

func loginHandler(svc buyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err.Error())
			return
		}
		b, err := svc.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}

func getBuyerHandler(svc buyerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c, "id")
		if !ok {
			return
		}
		b, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, b)
	}
}
