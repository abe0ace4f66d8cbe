package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/flyzone/flyzone-cli/internal/client/api"
	"github.com/flyzone/flyzone-cli/internal/common"
	"github.com/flyzone/flyzone-cli/internal/logging"
)

// AgentResult is the outcome of a chat query. A degraded result carries a
// locally generated canned reply instead of the backend agent's answer.
type AgentResult struct {
	Reply    string
	Degraded bool
	Reason   string
}

// AgentService sends chat queries to the backend travel agent.
type AgentService interface {
	Ask(ctx context.Context, query string) (*AgentResult, error)
}

type agentService struct {
	client api.Client
	log    logging.Logger
}

func NewAgentService(client api.Client, log logging.Logger) AgentService {
	return &agentService{client: client, log: log.With("component", "agent")}
}

func (a *agentService) Ask(ctx context.Context, query string) (*AgentResult, error) {
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", common.ErrValidation)
	}

	reply, err := a.client.AskAgent(ctx, query)
	if err != nil {
		if errors.Is(err, common.ErrMissingToken) {
			return nil, err
		}
		a.log.Warn(ctx, "agent query degraded", "reason", err.Error())
		return &AgentResult{Reply: cannedAgentReply(query), Degraded: true, Reason: err.Error()}, nil
	}
	return &AgentResult{Reply: reply}, nil
}
