package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/gymctl/internal/domain"
	"github.com/bnema/gymctl/internal/ports"
	"github.com/bradenaw/juniper/xslices"
)

type requester interface {
	Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error)
	Post(ctx context.Context, path string, body any) (json.RawMessage, error)
	Put(ctx context.Context, path string, body any) (json.RawMessage, error)
	Delete(ctx context.Context, path string) (json.RawMessage, error)
}

// Gateway implements the activities API contract on top of the transport.
// Wire payloads are snake_cased; only domain types leave this package.
type Gateway struct {
	client requester
}

var _ ports.Backend = (*Gateway)(nil)

func NewGateway(client requester) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	payload, err := g.client.Post(ctx, "/auth/login", credentialsSchema{Email: email, Password: password})
	if err != nil {
		return ports.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	var resp loginSchema
	if err := decode(payload, &resp); err != nil {
		return ports.LoginResult{}, fmt.Errorf("decode login response: %w", err)
	}
	if resp.Token == "" || resp.User == nil {
		return ports.LoginResult{}, errors.New("login response missing user or token")
	}

	return ports.LoginResult{User: fromUserSchema(*resp.User), Token: resp.Token}, nil
}

func (g *Gateway) Register(ctx context.Context, name, email, password string) (domain.UserIdentity, error) {
	payload, err := g.client.Post(ctx, "/auth/register", credentialsSchema{Name: name, Email: email, Password: password})
	if err != nil {
		return domain.UserIdentity{}, fmt.Errorf("register: %w", err)
	}

	var user userSchema
	if err := decode(payload, &user); err != nil {
		return domain.UserIdentity{}, fmt.Errorf("decode register response: %w", err)
	}

	return fromUserSchema(user), nil
}

func (g *Gateway) ListActivities(ctx context.Context, filters domain.ActivityFilters) ([]domain.Activity, error) {
	query := url.Values{}
	if filters.Query != "" {
		query.Set("q", filters.Query)
	}
	if filters.Category != "" {
		query.Set("category", filters.Category)
	}
	if filters.Day != nil {
		query.Set("day", strconv.Itoa(*filters.Day))
	}

	payload, err := g.client.Get(ctx, "/activities", query)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	var activities []activitySchema
	if isArray(payload) {
		if err := json.Unmarshal(payload, &activities); err != nil {
			return nil, fmt.Errorf("decode activities: %w", err)
		}
	}

	return xslices.Map(activities, fromActivitySchema), nil
}

func (g *Gateway) GetActivity(ctx context.Context, id domain.ActivityID) (domain.Activity, error) {
	payload, err := g.client.Get(ctx, activityPath(id), nil)
	if err != nil {
		if isStatus(err, http.StatusNotFound) {
			return domain.Activity{}, fmt.Errorf("get activity %d: %w: %w", id, domain.ErrActivityNotFound, err)
		}
		return domain.Activity{}, fmt.Errorf("get activity %d: %w", id, err)
	}

	return decodeActivity(payload)
}

func (g *Gateway) CreateActivity(ctx context.Context, input domain.ActivityInput) (domain.Activity, error) {
	payload, err := g.client.Post(ctx, "/admin/activities", toActivityInputSchema(input))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("create activity: %w", err)
	}

	return decodeActivity(payload)
}

func (g *Gateway) UpdateActivity(ctx context.Context, id domain.ActivityID, input domain.ActivityInput) (domain.Activity, error) {
	payload, err := g.client.Put(ctx, adminActivityPath(id), toActivityInputSchema(input))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("update activity %d: %w", id, err)
	}

	return decodeActivity(payload)
}

func (g *Gateway) DeleteActivity(ctx context.Context, id domain.ActivityID) error {
	if _, err := g.client.Delete(ctx, adminActivityPath(id)); err != nil {
		return fmt.Errorf("delete activity %d: %w", id, err)
	}
	return nil
}

func (g *Gateway) Enroll(ctx context.Context, id domain.ActivityID) error {
	if _, err := g.client.Post(ctx, activityPath(id)+"/enroll", nil); err != nil {
		return fmt.Errorf("enroll in activity %d: %w", id, err)
	}
	return nil
}

func (g *Gateway) Unenroll(ctx context.Context, id domain.ActivityID) error {
	if _, err := g.client.Delete(ctx, activityPath(id)+"/enroll"); err != nil {
		return fmt.Errorf("unenroll from activity %d: %w", id, err)
	}
	return nil
}

func (g *Gateway) MyActivities(ctx context.Context) ([]domain.MemberActivity, error) {
	payload, err := g.client.Get(ctx, "/me/activities", nil)
	if err != nil {
		return nil, fmt.Errorf("list my activities: %w", err)
	}

	var activities []memberActivitySchema
	if isArray(payload) {
		if err := json.Unmarshal(payload, &activities); err != nil {
			return nil, fmt.Errorf("decode my activities: %w", err)
		}
	}

	return xslices.Map(activities, fromMemberActivitySchema), nil
}

func activityPath(id domain.ActivityID) string {
	return "/activities/" + strconv.FormatInt(int64(id), 10)
}

func adminActivityPath(id domain.ActivityID) string {
	return "/admin/activities/" + strconv.FormatInt(int64(id), 10)
}

func decodeActivity(payload json.RawMessage) (domain.Activity, error) {
	var activity activitySchema
	if err := decode(payload, &activity); err != nil {
		return domain.Activity{}, fmt.Errorf("decode activity: %w", err)
	}
	return fromActivitySchema(activity), nil
}

func decode(payload json.RawMessage, target any) error {
	if len(payload) == 0 {
		return errors.New("empty response body")
	}
	return json.Unmarshal(payload, target)
}

func isArray(payload json.RawMessage) bool {
	return len(payload) > 0 && payload[0] == '['
}

func isStatus(err error, status int) bool {
	var apiErr *domain.APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
