package api

import (
	"encoding/json"

	"github.com/inboxing/mailadm/internal/roster"
)

// envelope is the common wrapper used by list and mailbox endpoints.
type envelope struct {
	Status  string          `json:"status"`
	Results json.RawMessage `json:"results"`
	Message string          `json:"message,omitempty"`
}

// errorBody is the shape of service error responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// accountRow is an account as it appears in the user list. The delivery
// counters come from a left join on the service side, so they are null
// for accounts that have never run a check.
type accountRow struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  int    `json:"is_admin"`
	Inbox    *int   `json:"inbox"`
	Spam     *int   `json:"spam"`
	Total    *int   `json:"total"`
}

// toAccount converts a wire row to the domain type. Null counters read as
// zero, and the delivery ratio is recomputed locally rather than trusted
// from the wire.
func (r accountRow) toAccount() roster.Account {
	a := roster.Account{
		ID:   r.ID,
		Name: r.Username,
		Role: roster.RoleUser,
	}
	if r.IsAdmin != 0 {
		a.Role = roster.RoleAdmin
	}
	if r.Total != nil {
		a.TotalSent = *r.Total
	}
	if r.Inbox != nil {
		a.Inbox = *r.Inbox
	}
	if r.Spam != nil {
		a.Spam = *r.Spam
	}
	return a
}

// accountEcho is the naked response from account create and update.
type accountEcho struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  int    `json:"is_admin"`
}

func (e accountEcho) toAccount() roster.Account {
	a := roster.Account{
		ID:   e.ID,
		Name: e.Username,
		Role: roster.RoleUser,
	}
	if e.IsAdmin != 0 {
		a.Role = roster.RoleAdmin
	}
	return a
}

// accountBody is the request payload for account create and update.
type accountBody struct {
	Username string `json:"username"`
	IsAdmin  int    `json:"is_admin"`
	Password string `json:"password"`
}

// mailboxRow is a mailbox entry as returned by the detail endpoints.
type mailboxRow struct {
	ID       int    `json:"id"`
	UserID   int    `json:"user_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r mailboxRow) toMailbox() roster.Mailbox {
	return roster.Mailbox{
		ID:       r.ID,
		UserID:   r.UserID,
		Email:    r.Email,
		Password: r.Password,
	}
}

// mailboxBody is the request payload for mailbox create and update.
type mailboxBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserID   int    `json:"user_id,omitempty"`
}

// loginRequest is the payload for POST /api/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse carries the bearer token issued on login.
type loginResponse struct {
	Token string `json:"token"`
}

// Overview summarizes delivery stats across all monitored addresses,
// as returned by the dashboard endpoint.
type Overview struct {
	Addresses []OverviewAddress
	SumInbox  int
	SumSpam   int
	Percent   string
	IsAdmin   bool
}

// OverviewAddress is one monitored address in the dashboard summary.
type OverviewAddress struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}

// overviewResponse is the wire shape of GET /api/emails. The total_info
// tuple is positional: [sum_inbox, sum_spam, total_percent].
type overviewResponse struct {
	Status    string            `json:"status"`
	Results   []OverviewAddress `json:"results"`
	TotalInfo []json.Number     `json:"total_info"`
	IsAdmin   int               `json:"is_admin"`
}
