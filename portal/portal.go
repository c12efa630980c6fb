package portal

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	"github.com/rs/zerolog/log"

	"github.com/assignwatch/assignwatch/types"
)

// DefaultBaseURL is the public address of the AssignWatch portal.
const DefaultBaseURL = "https://assignwatch.app"

type LoginInfo struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthenticityToken is the hidden CSRF token the portal embeds in its login
// form. The login POST is rejected without it.
type AuthenticityToken struct {
	Token string
}

// Client is a logged in session against the AssignWatch portal.
type Client struct {
	BaseURL   string
	Client    *http.Client
	Collector *colly.Collector
}

// NewClient logs in to the public portal with the given login information.
func NewClient(loginInfo *LoginInfo) (*Client, error) {
	return NewClientAt(DefaultBaseURL, loginInfo)
}

// NewClientAt logs in against a portal at a specific address. Tests use it to
// point the client at a local fixture server.
func NewClientAt(baseURL string, loginInfo *LoginInfo) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid portal URL %q: %w", baseURL, err)
	}

	jar, _ := cookiejar.New(nil)
	client := &http.Client{Jar: jar}
	// Revisits stay allowed so one session can fetch the same page again.
	collector := colly.NewCollector(
		colly.AllowedDomains(u.Host, u.Hostname()),
		colly.AllowURLRevisit(),
	)

	collector.OnResponse(func(r *colly.Response) {
		log.Debug().Int("status", r.StatusCode).Str("url", r.Request.URL.String()).Msg("portal response")
	})

	loginURL := baseURL + "/login"
	authToken, err := GetToken(loginURL, client)
	if err != nil {
		return nil, err
	}

	// Attempts to log the user in with the given login information
	err = collector.Post(loginURL, map[string]string{
		"email":              loginInfo.Email,
		"password":           loginInfo.Password,
		"authenticity_token": authToken.Token,
	})
	if err != nil {
		return nil, fmt.Errorf("could not log in, check the login information: %w", err)
	}

	return &Client{
		BaseURL:   baseURL,
		Client:    client,
		Collector: collector,
	}, nil
}

// GetToken fetches the login page and extracts the authenticity token needed
// to post the login form.
func GetToken(loginURL string, client *http.Client) (AuthenticityToken, error) {
	response, err := client.Get(loginURL)
	if err != nil {
		return AuthenticityToken{}, fmt.Errorf("could not fetch login page: %w", err)
	}
	defer response.Body.Close()

	document, err := goquery.NewDocumentFromReader(response.Body)
	if err != nil {
		return AuthenticityToken{}, fmt.Errorf("could not read login page: %w", err)
	}

	token, _ := document.Find("input[name=authenticity_token]").Attr("value")
	return AuthenticityToken{Token: token}, nil
}

// GetAssignments fetches all assignments visible to the logged in user.
//
// The portal renders one div.assignment-card per assignment, with the record
// fields in data attributes:
//
//	<div class="assignment-card" data-id="41" data-class-id="7"
//	     data-due="2024-03-01T00:00:00Z" data-type="assignment"
//	     data-group="individual" data-submitted="false"
//	     data-submitted-at="" data-in-progress="false">
//	  <h2 class="assignment-title">Essay draft</h2>
//	  <p class="assignment-desc">Two pages minimum.</p>
//	</div>
func (c *Client) GetAssignments() ([]types.Assignment, error) {
	assignments := []types.Assignment{}

	collector := c.Collector.Clone()
	collector.OnHTML("div.assignment-card", func(e *colly.HTMLElement) {
		assignments = append(assignments, types.Assignment{
			ID:          e.Attr("data-id"),
			ClassID:     e.Attr("data-class-id"),
			Title:       strings.TrimSpace(e.ChildText(".assignment-title")),
			Description: strings.TrimSpace(e.ChildText(".assignment-desc")),
			DueDate:     e.Attr("data-due"),
			Type:        types.AssignmentType(e.Attr("data-type")),
			GroupType:   types.GroupType(e.Attr("data-group")),
			Submitted:   e.Attr("data-submitted") == "true",
			SubmittedAt: e.Attr("data-submitted-at"),
			InProgress:  e.Attr("data-in-progress") == "true",
		})
	})

	if err := collector.Visit(c.BaseURL + "/assignments"); err != nil {
		return nil, fmt.Errorf("could not fetch assignments: %w", err)
	}
	return assignments, nil
}

// GetClasses fetches all class records visible to the logged in user. The
// portal renders one div.class-card per class, shaped like the assignment
// cards above.
func (c *Client) GetClasses() ([]types.Class, error) {
	classes := []types.Class{}

	collector := c.Collector.Clone()
	collector.OnHTML("div.class-card", func(e *colly.HTMLElement) {
		classes = append(classes, types.Class{
			ID:          e.Attr("data-id"),
			Title:       strings.TrimSpace(e.ChildText(".class-title")),
			Description: strings.TrimSpace(e.ChildText(".class-desc")),
		})
	})

	if err := collector.Visit(c.BaseURL + "/classes"); err != nil {
		return nil, fmt.Errorf("could not fetch classes: %w", err)
	}
	return classes, nil
}
