package handlers

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log"
	"net/http"
	"strings"
	"sync"

	"checkout/internal/checkout"
)

//go:embed templates/page.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/page.html"))

type pageView struct {
	Form       checkout.FormState
	Currencies []checkout.Currency
	Notices    []checkout.Notice
	ReplaceURL string
}

// browser collects the side effects a session asks of the browser during
// one request so the handler can turn them into a redirect or a page.
type browser struct {
	mu         sync.Mutex
	navigateTo string
	replaceURL string
	notices    []checkout.Notice
}

func (b *browser) Navigate(href string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.navigateTo = href
}

func (b *browser) ReplaceURL(path string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replaceURL = path
}

func (b *browser) Notify(n checkout.Notice) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notices = append(b.notices, n)
}

func (b *browser) view(form checkout.FormState) pageView {
	b.mu.Lock()
	defer b.mu.Unlock()
	return pageView{
		Form:       form,
		Currencies: checkout.Currencies,
		Notices:    append([]checkout.Notice(nil), b.notices...),
		ReplaceURL: b.replaceURL,
	}
}

type Page struct {
	backend   checkout.BackendContract
	bus       checkout.PublisherContract
	publicURL string
}

// NewPage serves the widget. publicURL is the scheme and host the browser
// reaches this server on; the PayPal redirect URLs are built from it.
func NewPage(backend checkout.BackendContract, bus checkout.PublisherContract, publicURL string) *Page {
	return &Page{backend: backend, bus: bus, publicURL: strings.TrimRight(publicURL, "/")}
}

// Index is a page load. A return from PayPal carrying success=true and a
// token is captured before the page is rendered.
func (h *Page) Index(w http.ResponseWriter, r *http.Request) {
	b := &browser{}
	s := checkout.NewSession(h.publicURL+r.URL.RequestURI(), h.backend, b, b, h.bus)
	s.Mount(r.Context())

	select {
	case <-s.Done():
	case <-r.Context().Done():
		log.Printf("layer=handler component=page method=Index err=%v", r.Context().Err())
		return
	}

	h.render(w, http.StatusOK, b.view(checkout.DefaultForm()))
}

func (h *Page) OneTime(w http.ResponseWriter, r *http.Request) {
	h.initiate(w, r, func(ctx context.Context, s *checkout.Session, form checkout.FormState) error {
		return s.InitiateOneTime(ctx, form)
	})
}

func (h *Page) Recurring(w http.ResponseWriter, r *http.Request) {
	h.initiate(w, r, func(ctx context.Context, s *checkout.Session, form checkout.FormState) error {
		return s.InitiateSubscription(ctx, form)
	})
}

type initiator func(ctx context.Context, s *checkout.Session, form checkout.FormState) error

func (h *Page) initiate(w http.ResponseWriter, r *http.Request, start initiator) {
	if err := r.ParseForm(); err != nil {
		log.Printf("layer=handler component=page method=initiate err=%v", err)
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	form := checkout.Reduce(checkout.DefaultForm(),
		checkout.SetAmount(r.PostForm.Get("amount")),
		checkout.SetCurrency(r.PostForm.Get("currency")),
	)

	b := &browser{}
	s := checkout.NewSession(h.publicURL+"/", h.backend, b, b, h.bus)
	err := start(r.Context(), s, form)
	if err == nil && b.navigateTo != "" {
		http.Redirect(w, r, b.navigateTo, http.StatusSeeOther)
		return
	}

	status := http.StatusBadGateway
	if errors.Is(err, checkout.ErrInvalidAmount) || errors.Is(err, checkout.ErrInvalidCurrency) {
		status = http.StatusUnprocessableEntity
	}
	log.Printf("layer=handler component=page method=initiate status=%d err=%v", status, err)
	h.render(w, status, b.view(form))
}

func (h *Page) render(w http.ResponseWriter, status int, v pageView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, v); err != nil {
		log.Printf("layer=handler component=page method=render err=%v", err)
	}
}
