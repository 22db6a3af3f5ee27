// mindful/controllers/chat.go
package controllers

import (
	"context"
	"errors"
	"time"

	"mindful/config"
	"mindful/services/llm"
	"mindful/services/prompts"
	"mindful/services/triage"
	"mindful/sources/psql/dao"
	"mindful/utils/logging"
	"mindful/utils/types"

	"go.uber.org/zap"
)

// ErrConversationNotFound is returned by SubmitFeedback for unknown ids.
var ErrConversationNotFound = errors.New("conversation not found")

// ChatController sequences one message through the pipeline: crisis check,
// intent classification, context assembly, prompt build, generation, and
// persistence of the resulting turn.
type ChatController struct {
	cfg         config.Config
	lexicons    triage.Lexicons
	chain       *llm.Chain
	userDAO     *dao.UserDAO
	convDAO     *dao.ConversationDAO
	feedbackDAO *dao.FeedbackDAO
}

func NewChatController(cfg config.Config, lexicons triage.Lexicons, chain *llm.Chain, userDAO *dao.UserDAO, convDAO *dao.ConversationDAO, feedbackDAO *dao.FeedbackDAO) *ChatController {
	return &ChatController{
		cfg:         cfg,
		lexicons:    lexicons,
		chain:       chain,
		userDAO:     userDAO,
		convDAO:     convDAO,
		feedbackDAO: feedbackDAO,
	}
}

// ProcessMessage runs the triage pipeline for one message and persists the
// turn. Crisis messages short-circuit generation entirely: the fixed safety
// text is returned even when the save fails afterwards.
func (c *ChatController) ProcessMessage(ctx context.Context, sessionID, message string) (*types.ChatResult, error) {
	defer logging.LogDuration(ctx, "process_message")()

	user, err := c.userDAO.GetOrCreateBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var response string
	var intent triage.Intent
	var isCrisis bool

	if c.lexicons.IsCrisis(message) {
		response = prompts.CrisisResponse(c.cfg.CrisisHotline)
		intent = triage.IntentCrisis
		isCrisis = true
		logging.AppLogger.Info("crisis keywords detected, skipping generation",
			zap.String("user_id", user.ID))
	} else {
		intent = c.lexicons.Classify(message)

		history, err := c.convDAO.RecentNonCrisis(ctx, user.ID, c.cfg.HistoryWindow)
		if err != nil {
			return nil, err
		}

		prompt := prompts.Build(intent, message, prompts.RenderHistory(history))
		response = c.chain.Generate(ctx, prompt, prompts.SystemPrompt)
	}

	conv, err := c.convDAO.SaveConversation(ctx, user.ID, message, response, string(intent), isCrisis)
	if err != nil {
		if isCrisis {
			// The safety text must still reach the caller.
			logging.ErrorLogger.Error("failed to save crisis conversation",
				zap.String("user_id", user.ID), zap.Error(err))
			return &types.ChatResult{
				Response: response,
				Intent:   string(intent),
				IsCrisis: true,
			}, nil
		}
		return nil, err
	}

	return &types.ChatResult{
		Response:       response,
		Intent:         string(intent),
		ConversationID: conv.ID,
		IsCrisis:       isCrisis,
	}, nil
}

// History returns the session's turns newest-first. An unknown session is an
// empty history, not an error.
func (c *ChatController) History(ctx context.Context, sessionID string, limit int) ([]types.HistoryItem, error) {
	user, err := c.userDAO.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return []types.HistoryItem{}, nil
	}

	convs, err := c.convDAO.HistoryForUser(ctx, user.ID, limit)
	if err != nil {
		return nil, err
	}

	items := make([]types.HistoryItem, 0, len(convs))
	for _, conv := range convs {
		items = append(items, types.HistoryItem{
			ID:        conv.ID,
			Message:   conv.Message,
			Response:  conv.Response,
			Intent:    conv.Intent,
			IsCrisis:  conv.IsCrisis,
			CreatedAt: conv.CreatedAt.Format(time.RFC3339),
		})
	}
	return items, nil
}

// SubmitFeedback upserts feedback for a conversation, last write wins.
func (c *ChatController) SubmitFeedback(ctx context.Context, req types.FeedbackRequest) error {
	conv, err := c.convDAO.GetByID(ctx, req.ConversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return ErrConversationNotFound
	}
	_, err = c.feedbackDAO.Upsert(ctx, req.ConversationID, req.Helpful, req.Comment)
	return err
}
