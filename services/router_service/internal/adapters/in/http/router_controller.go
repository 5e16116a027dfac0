package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
)

// OfflineLister 读取离线收件箱
type OfflineLister interface {
	List(ctx context.Context, userID int64) ([]*entity.OfflineRecord, error)
}

// RouterController 路由服务的HTTP入口
type RouterController struct {
	client  in.RouterClient
	offline OfflineLister
}

// NewRouterController 创建控制器，offline 为空时不暴露离线收件箱接口
func NewRouterController(client in.RouterClient, offline OfflineLister) *RouterController {
	return &RouterController{client: client, offline: offline}
}

// RegisterRoutes 注册路由
func (c *RouterController) RegisterRoutes(r *gin.RouterGroup) {
	presence := r.Group("/presence")
	{
		presence.GET("/:user_id", c.IsOnline)
		presence.POST("/online-users", c.OnlineUsers)
		presence.POST("/online-terminals", c.OnlineTerminals)
	}

	messages := r.Group("/messages")
	{
		messages.POST("/private", c.SendPrivateMessage)
		messages.POST("/group", c.SendGroupMessage)
	}

	if c.offline != nil {
		r.GET("/offline/:user_id", c.ListOffline)
	}
}

// UserRefRequest 用户连接位
type UserRefRequest struct {
	UserID   int64 `json:"user_id" binding:"required"`
	Terminal int   `json:"terminal"`
}

// SendPrivateRequest 发送私聊消息请求
type SendPrivateRequest struct {
	Sender        UserRefRequest  `json:"sender" binding:"required"`
	RecvID        int64           `json:"recv_id" binding:"required"`
	RecvTerminals []int           `json:"recv_terminals"`
	Payload       json.RawMessage `json:"payload"`
	SendResult    bool            `json:"send_result"`
	SendToSelf    bool            `json:"send_to_self"`
}

// SendGroupRequest 发送群聊消息请求
type SendGroupRequest struct {
	Sender        UserRefRequest  `json:"sender" binding:"required"`
	RecvIDs       []int64         `json:"recv_ids"`
	RecvTerminals []int           `json:"recv_terminals"`
	Payload       json.RawMessage `json:"payload"`
	SendResult    bool            `json:"send_result"`
}

// UserIDsRequest 批量查询请求
type UserIDsRequest struct {
	UserIDs []int64 `json:"user_ids"`
}

// SendPrivateMessage 发送私聊消息
// @Summary 发送私聊消息
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body SendPrivateRequest true "消息"
// @Success 200 {object} map[string]interface{}
// @Router /messages/private [post]
func (c *RouterController) SendPrivateMessage(ctx *gin.Context) {
	var req SendPrivateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sender, err := toUserRef(req.Sender)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	terminals, err := toTerminals(req.RecvTerminals)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = c.client.SendPrivateMessage(ctx.Request.Context(), &entity.PrivateMessage{
		Sender:        sender,
		RecvID:        req.RecvID,
		RecvTerminals: terminals,
		Payload:       payloadOf(req.Payload),
		SendResult:    req.SendResult,
		SendToSelf:    req.SendToSelf,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"code": 0})
}

// SendGroupMessage 发送群聊消息
// @Summary 发送群聊消息
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body SendGroupRequest true "消息"
// @Success 200 {object} map[string]interface{}
// @Router /messages/group [post]
func (c *RouterController) SendGroupMessage(ctx *gin.Context) {
	var req SendGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sender, err := toUserRef(req.Sender)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	terminals, err := toTerminals(req.RecvTerminals)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = c.client.SendGroupMessage(ctx.Request.Context(), &entity.GroupMessage{
		Sender:        sender,
		RecvIDs:       req.RecvIDs,
		RecvTerminals: terminals,
		Payload:       payloadOf(req.Payload),
		SendResult:    req.SendResult,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"code": 0})
}

// IsOnline 查询用户是否在线
// @Summary 查询用户是否在线
// @Tags Presence
// @Produce json
// @Param user_id path int64 true "用户ID"
// @Success 200 {object} map[string]interface{}
// @Router /presence/{user_id} [get]
func (c *RouterController) IsOnline(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	online, err := c.client.IsOnline(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": gin.H{"online": online},
	})
}

// OnlineUsers 筛选在线用户
func (c *RouterController) OnlineUsers(ctx *gin.Context) {
	var req UserIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userIDs, err := c.client.OnlineUsers(ctx.Request.Context(), req.UserIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": gin.H{"user_ids": userIDs},
	})
}

// OnlineTerminals 查询用户的在线终端
func (c *RouterController) OnlineTerminals(ctx *gin.Context) {
	var req UserIDsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	online, err := c.client.OnlineTerminals(ctx.Request.Context(), req.UserIDs)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	terminals := lo.MapValues(online, func(ts []entity.Terminal, _ int64) []int {
		return lo.Map(ts, func(t entity.Terminal, _ int) int { return t.Code() })
	})
	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": gin.H{"terminals": terminals},
	})
}

// ListOffline 查看某用户的离线收件箱
func (c *RouterController) ListOffline(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	records, err := c.offline.List(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"data": gin.H{"records": records},
	})
}

func toUserRef(req UserRefRequest) (entity.UserRef, error) {
	terminal, err := entity.TerminalByCode(req.Terminal)
	if err != nil {
		return entity.UserRef{}, err
	}
	return entity.UserRef{UserID: req.UserID, Terminal: terminal}, nil
}

func toTerminals(codes []int) ([]entity.Terminal, error) {
	terminals := make([]entity.Terminal, 0, len(codes))
	for _, code := range codes {
		terminal, err := entity.TerminalByCode(code)
		if err != nil {
			return nil, err
		}
		terminals = append(terminals, terminal)
	}
	return terminals, nil
}

// payloadOf 空载荷不往下游传 null
func payloadOf(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
