package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/contactkeeper/internal/client/config"
	"github.com/dmitrijs2005/contactkeeper/internal/client/models"
)

type fakeClient struct {
	token    string
	contacts []models.Contact
	nextID   int64

	registerErr error
	loginErr    error
	listErr     error
	createErr   error
	updateErr   error
	deleteErr   error
	pingErr     error

	lastInput models.ContactInput
	updatedID int64
	deletedID int64
}

func (f *fakeClient) Register(ctx context.Context, username, email, password string) (*models.Session, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.token = "tok"
	return &models.Session{Message: "User registered successfully", Token: "tok", User: models.User{ID: 1, Username: username, Email: email}}, nil
}

func (f *fakeClient) Login(ctx context.Context, username, password string) (*models.Session, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	f.token = "tok"
	return &models.Session{Message: "Login successful", Token: "tok", User: models.User{ID: 1, Username: username}}, nil
}

func (f *fakeClient) Logout()                        { f.token = "" }
func (f *fakeClient) LoggedIn() bool                 { return f.token != "" }
func (f *fakeClient) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeClient) ListContacts(ctx context.Context) ([]models.Contact, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.contacts, nil
}

func (f *fakeClient) CreateContact(ctx context.Context, in models.ContactInput) (*models.Contact, error) {
	f.lastInput = in
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	c := models.Contact{ID: f.nextID, UserID: 1, Name: in.Name, Email: in.Email, Phone: in.Phone}
	f.contacts = append([]models.Contact{c}, f.contacts...)
	return &c, nil
}

func (f *fakeClient) UpdateContact(ctx context.Context, id int64, in models.ContactInput) (*models.Contact, error) {
	f.lastInput = in
	f.updatedID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return &models.Contact{ID: id, UserID: 1, Name: in.Name, Email: in.Email, Phone: in.Phone}, nil
}

func (f *fakeClient) DeleteContact(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.deleteErr
}

func newTestApp(t *testing.T, api *fakeClient, input string) (*App, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return newApp(cfg, api, strings.NewReader(input), out), out
}

// scriptedText replaces getSimpleText with answers served in order.
func scriptedText(t *testing.T, answers ...string) {
	t.Helper()
	orig := getSimpleText
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt #%d", i+1)
		}
		a := answers[i]
		i++
		return a, nil
	}
	t.Cleanup(func() { getSimpleText = orig })
}

func strPtr(s string) *string { return &s }

func scriptedPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(*bufio.Reader, io.Writer) (string, error) { return pw, nil }
	t.Cleanup(func() { getPassword = orig })
}
