package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/marisolhealth/sessiondesk/internal/domain"
)

// kindPaths maps an assignable kind to its collection path.
var kindPaths = map[domain.AssignableKind]string{
	domain.KindResource:  "resources",
	domain.KindSurvey:    "surveys",
	domain.KindChallenge: "challenges",
}

// ListAssignables fetches the eligible set for one side-channel flow.
func (c *Client) ListAssignables(ctx context.Context, kind domain.AssignableKind, limit int) ([]domain.Assignable, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}

	var items []domain.Assignable
	if err := c.get(ctx, string(kind)+"-list", "/"+kindPaths[kind], query, &items); err != nil {
		return nil, err
	}

	for i := range items {
		items[i].Kind = kind
	}
	return items, nil
}

// Assign attaches one item to a client. Failures are isolated per flow by
// the caller; this adapter only reports them.
func (c *Client) Assign(ctx context.Context, kind domain.AssignableKind, itemID, clientID string) error {
	body := struct {
		ClientID string `json:"clientId"`
	}{ClientID: clientID}

	_, err := c.send(ctx, "assign-"+string(kind), http.MethodPost, pathEscape(kindPaths[kind], itemID, "assign"), body)
	if err != nil {
		return &domain.AssignError{Kind: kind, ItemID: itemID, ClientID: clientID, Err: err}
	}

	c.logger.Info("assignment created", "kind", kind, "itemId", itemID, "clientId", clientID)
	return nil
}
