package api

import (
	"errors"
	"net/http"

	"github.com/roshanpatil2000/web-analytics-backend/model"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/respond"
	"github.com/roshanpatil2000/web-analytics-backend/pkg/security"
	"github.com/roshanpatil2000/web-analytics-backend/util"
	"github.com/roshanpatil2000/web-analytics-backend/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type signupBody struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *API) UserSignup(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data signupBody
	if err := c.ShouldBindJSON(&data); err != nil {
		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))

		respond.Internal(c, err)
		return
	}

	data.Email = validators.NormalizeEmail(data.Email)

	if data.Name == "" || data.Email == "" || data.Password == "" {
		respond.ErrorMessage(c, http.StatusBadRequest, "All fields are required!")
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		respond.ErrorMessage(c, http.StatusBadRequest, err.Error())
		return
	}

	role := model.RoleUser
	switch data.Role {
	case "", string(model.RoleUser):
	case string(model.RoleAdmin):
		role = model.RoleAdmin
	default:
		respond.ErrorMessage(c, http.StatusBadRequest, "Invalid role provided")
		return
	}

	// The unique index on email is the real backstop for concurrent
	// signups, this pre-check only exists for the friendlier error path
	var found bool

	r := a.DB.Model(model.User{}).
		Select("count(*) > 0").
		Where("email = ?", data.Email).
		Find(&found)
	if r.Error != nil {
		zap.L().Error("Failed to check if user is registered", zap.Error(r.Error), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	if found {
		respond.ErrorMessage(c, http.StatusConflict, "User already exists")
		return
	}

	hash, err := a.Hash.Generate(data.Password)
	if err != nil {
		zap.L().Error("Failed to hash password", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	verif, err := security.NewOpaqueToken(security.VerificationTokenTTL)
	if err != nil {
		zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	user := model.User{
		Name:                  data.Name,
		Email:                 data.Email,
		Password:              hash,
		Role:                  role,
		VerificationToken:     &verif.Token,
		VerificationExpiresAt: &verif.ExpiresAt,
	}

	var authToken string

	// The insert and the token persist are one transaction so a signup
	// can never leave a tokenless half-created row behind
	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		token, err := util.MakeAuthToken(&user)
		if err != nil {
			return err
		}

		if err := tx.Model(&user).Update("auth_token", token).Error; err != nil {
			return err
		}

		authToken = token
		user.AuthToken = &token
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			respond.ErrorMessage(c, http.StatusConflict, "User already exists")
			return
		}

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))

		respond.ErrorMessage(c, http.StatusInternalServerError, "Something went wrong!")
		return
	}

	setAuthCookie(c, authToken)

	respond.Success(c, http.StatusCreated, "User created successfully", gin.H{
		"user": user,
	})
}
