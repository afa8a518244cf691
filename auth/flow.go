// Package auth implements the OAuth2 authorization-code web flow against an
// Azure AD identity provider: redirect, authorise, token exchange, a single
// workbook API call and a rendered JSON response.
package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"strings"

	"golang.org/x/oauth2"

	"github.com/workbooktools/workbook-app-graph/graph"
	"github.com/workbooktools/workbook-app-graph/workbook"
)

// Flow serves the authorization-code dance for a single pre-built request
// descriptor. One authorisation attempt is in flight at a time - the session
// is replaced on each visit to /login.
type Flow struct {
	OAuth      *oauth2.Config
	Resource   string
	Client     *graph.Client
	Descriptor workbook.Descriptor

	// Tokens receives the access token after a successful code exchange.
	Tokens chan *oauth2.Token

	session *Session
}

// NewFlow creates a flow that will execute the descriptor against the client
// once the user has authorised access to the resource.
func NewFlow(config *oauth2.Config, resource string, client *graph.Client, descriptor workbook.Descriptor) *Flow {
	return &Flow{
		OAuth:      config,
		Resource:   resource,
		Client:     client,
		Descriptor: descriptor,
		Tokens:     make(chan *oauth2.Token, 1),
	}
}

// Endpoint builds the identity provider's authorize/token endpoint pair from
// the authority host URL and tenant, e.g.
// https://login.microsoftonline.com/contoso.onmicrosoft.com/oauth2/authorize.
func Endpoint(authority, tenant string) oauth2.Endpoint {
	base := strings.TrimSuffix(authority, "/") + "/" + tenant

	return oauth2.Endpoint{
		AuthURL:  base + "/oauth2/authorize",
		TokenURL: base + "/oauth2/token",
	}
}

// Handler returns the flow's HTTP routes:
//
//   - /          redirects to /login
//   - /login     issues a session and redirects to the authorization endpoint
//   - /getAToken verifies the state and exchanges the code for a token
//   - /graphcall executes the descriptor and renders the JSON response
func (f *Flow) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", f.root)
	mux.HandleFunc("/login", f.login)
	mux.HandleFunc("/getAToken", f.token)
	mux.HandleFunc("/graphcall", f.graphcall)

	return mux
}

func (f *Flow) root(w http.ResponseWriter, rq *http.Request) {
	http.Redirect(w, rq, "/login", http.StatusTemporaryRedirect)
}

func (f *Flow) login(w http.ResponseWriter, rq *http.Request) {
	f.session = NewSession()

	url := f.OAuth.AuthCodeURL(f.session.State, oauth2.SetAuthURLParam("resource", f.Resource))

	http.Redirect(w, rq, url, http.StatusTemporaryRedirect)
}

func (f *Flow) token(w http.ResponseWriter, rq *http.Request) {
	if f.session == nil {
		http.Redirect(w, rq, "/login", http.StatusTemporaryRedirect)
		return
	}

	state := rq.FormValue("state")
	if state != f.session.State {
		err := fmt.Errorf("%w: expected %s, got %s", ErrStateMismatch, f.session.State, state)
		f.session = nil
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	code := rq.FormValue("code")
	if code == "" {
		http.Error(w, "no authorization code received", http.StatusBadRequest)
		return
	}

	token, err := f.OAuth.Exchange(rq.Context(), code)
	if err != nil {
		http.Error(w, fmt.Sprintf("unable to exchange authorization code for token (%v)", err), http.StatusBadGateway)
		return
	}

	f.session.Token = token

	select {
	case f.Tokens <- token:
	default:
	}

	http.Redirect(w, rq, "/graphcall", http.StatusTemporaryRedirect)
}

func (f *Flow) graphcall(w http.ResponseWriter, rq *http.Request) {
	if f.session == nil || f.session.Token == nil {
		http.Redirect(w, rq, "/login", http.StatusTemporaryRedirect)
		return
	}

	response, err := f.Client.Execute(rq.Context(), f.Descriptor, f.session.Token.AccessToken)
	if err != nil {
		http.Error(w, fmt.Sprintf("API call failed (%v)", err), http.StatusBadGateway)
		return
	}

	var pretty bytes.Buffer
	if response == nil {
		pretty.WriteString("{}")
	} else if err := json.Indent(&pretty, response, "", "  "); err != nil {
		pretty.Write(response)
	}

	page := map[string]any{
		"method": f.Descriptor.Method,
		"path":   f.Descriptor.Path,
		"data":   pretty.String(),
	}

	var b bytes.Buffer
	if err := graphPage.Execute(&b, page); err != nil {
		http.Error(w, "Error formatting page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.Write(b.Bytes())
}

var graphPage = template.Must(template.New("graphcall").Parse(`<!DOCTYPE html>
<html>
<head>
  <title>workbook-app-graph</title>
</head>
<body>
  <h1>{{.method}} {{.path}}</h1>
  <pre>{{.data}}</pre>
</body>
</html>
`))

// FindPort probes localhost ports in the range [from,to] and returns the
// first one that is free.
func FindPort(host string, from, to int) (int, error) {
	for port := from; port <= to; port++ {
		addr := fmt.Sprintf("%s:%d", host, port)
		if l, err := net.Listen("tcp", addr); err == nil {
			l.Close()
			return port, nil
		}
	}

	return 0, fmt.Errorf("no free port in range %d-%d", from, to)
}

// OpenBrowser opens the default browser at the URL.
func OpenBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()

	case "linux":
		return exec.Command("xdg-open", url).Start()

	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()

	default:
		return fmt.Errorf("unsupported platform %s", runtime.GOOS)
	}
}
