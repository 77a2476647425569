package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"rental-backend/models"
	"rental-backend/services"
	"rental-backend/utils"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"omitempty,oneof=guest owner admin"`
}

type UserController struct {
	UserSvc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{UserSvc: svc}
}

func (uc *UserController) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}

	user := models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     req.Role,
	}

	if err := uc.UserSvc.Create(&user, req.Password); err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.JSONError(c, http.StatusConflict, "email is already registered")
			return
		}
		log.Printf("❌ CreateUser failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, user)
}

func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.UserSvc.GetAll()
	if err != nil {
		log.Printf("❌ GetUsers failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve users")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

func (uc *UserController) GetUserByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return
	}

	user, err := uc.UserSvc.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found")
			return
		}
		log.Printf("❌ GetUserByID failed: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "failed to retrieve user")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}
