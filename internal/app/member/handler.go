package member

import (
	"errors"
	"net/http"
	"strconv"

	"backend/internal/apperr"

	"github.com/gin-gonic/gin"
)

type Handler interface {
	SignUp(c *gin.Context)
	SignIn(c *gin.Context)
	SignOut(c *gin.Context)
	Me(c *gin.Context)
	ListMembers(c *gin.Context)
	ApproveMember(c *gin.Context)
	UpdateProfile(c *gin.Context)
	SetStatus(c *gin.Context)
}

type handler struct {
	service Service
}

func NewHandler(service Service) Handler {
	return &handler{service: service}
}

// @Summary Register a member
// @Description The first account becomes the workspace admin; later accounts await approval
// @Tags Members
// @Accept json
// @Produce json
// @Success 201 {object} Member
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/auth/signup [post]
func (h *handler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	m, err := h.service.SignUp(req)
	if err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "login id already taken"})
			return
		}
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusCreated, m)
}

// @Summary Sign in
// @Tags Members
// @Accept json
// @Produce json
// @Success 200 {object} SignInResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/signin [post]
func (h *handler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := h.service.SignIn(req)
	if err != nil {
		status := http.StatusUnauthorized
		if errors.Is(err, ErrPendingApproval) {
			status = http.StatusForbidden
		}
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *handler) SignOut(c *gin.Context) {
	key := CurrentSessionKey(c)
	if err := h.service.SignOut(key); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: "failed to sign out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"signed_out": true})
}

func (h *handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentMember(c))
}

// @Summary List members with workload scores
// @Tags Members
// @Produce json
// @Success 200 {object} MemberListResponse
// @Router /api/members [get]
func (h *handler) ListMembers(c *gin.Context) {
	members, err := h.service.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to list members"})
		return
	}
	c.JSON(http.StatusOK, MemberListResponse{Members: members})
}

func (h *handler) ApproveMember(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid member id"})
		return
	}
	me := CurrentMember(c)
	if err := h.service.Approve(me.ID, id); err != nil {
		if errors.Is(err, ErrForbidden) {
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"approved": id})
}

func (h *handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	me := CurrentMember(c)
	if err := h.service.UpdateProfile(me.ID, req); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": me.ID})
}

func (h *handler) SetStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	me := CurrentMember(c)
	if err := h.service.SetStatus(me.ID, req.Status); err != nil {
		c.JSON(apperr.HTTPStatus(err), ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}
