package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"quoteadmin/services"
	"quoteadmin/testhelpers"
)

var testMode = services.PricingMode{Discount: services.DiscountPercent}

func TestHandleQuoteCreate_RendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteCreate(testMode)

	req := httptest.NewRequest(http.MethodGet, "/quotes/new", nil)
	rec := httptest.NewRecorder()

	if err := handler(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "New Quote", `name="material_name"`)
}

func postForm(form url.Values, target string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target,
		strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("HX-Request", "true")
	return req
}

func validQuoteForm() url.Values {
	form := url.Values{}
	form.Set("name", "Test Client")
	form.Set("email", "client@example.com")
	form.Set("location", "Austin, TX")
	form.Set("service", "Painting")
	form.Set("labor", "200")
	form.Set("fees", "25")
	form.Set("discount", "10")
	form.Set("days", "2")
	form.Set("workers", "3")
	form.Add("material_name", "Paint")
	form.Add("material_qty", "2")
	form.Add("material_price", "25")
	form.Add("material_name", "Brushes")
	form.Add("material_qty", "4")
	form.Add("material_price", "5")
	// Trailing blank "add" row the form always submits
	form.Add("material_name", "")
	form.Add("material_qty", "")
	form.Add("material_price", "")
	return form
}

func TestHandleQuoteSave_ValidData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app, testMode)

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, postForm(validQuoteForm(), "/quotes"), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	testhelpers.AssertHXRedirect(t, rec.Header().Get("HX-Redirect"), "/quotes")

	records, err := app.FindRecordsByFilter("quotes", "name = {:name}", "", 1, 0,
		map[string]any{"name": "Test Client"})
	if err != nil || len(records) == 0 {
		t.Fatal("expected quote to be created in database")
	}

	q := services.QuoteFromRecord(records[0])
	// materials 70 + labor 200 + fees 25, minus 10% of 270 = 268.00
	if !q.MaterialsTotal.Equal(services.MustMoney(70)) {
		t.Errorf("materials_total = %s, want 70.00", q.MaterialsTotal.Format())
	}
	if !q.DiscountAmount.Equal(services.MustMoney(27)) {
		t.Errorf("discount_amount = %s, want 27.00", q.DiscountAmount.Format())
	}
	if !q.Total.Equal(services.MustMoney(268)) {
		t.Errorf("total = %s, want 268.00", q.Total.Format())
	}
	if q.Materials.Len() != 2 {
		t.Errorf("expected 2 material lines, got %d", q.Materials.Len())
	}
}

func TestHandleQuoteSave_MissingRequiredFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app, testMode)

	form := validQuoteForm()
	form.Set("name", "")
	form.Set("location", "")

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, postForm(form, "/quotes"), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	if rec.Header().Get("HX-Redirect") != "" {
		t.Error("expected no HX-Redirect for validation error")
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Client name is required.", "Location is required.")

	records, _ := app.FindRecordsByFilter("quotes", "", "", 0, 0, nil)
	if len(records) != 0 {
		t.Error("invalid form must not create a record")
	}
}

func TestHandleQuoteSave_BadMoneyInput(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app, testMode)

	form := validQuoteForm()
	form.Set("labor", "lots")

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, postForm(form, "/quotes"), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Labor must be a valid amount.")
}

func TestHandleQuoteSave_BadMaterialRow(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app, testMode)

	form := validQuoteForm()
	form.Add("material_name", "Ghost material")
	form.Add("material_qty", "0") // zero quantity is invalid
	form.Add("material_price", "5")

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, postForm(form, "/quotes"), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d", rec.Code)
	}
	records, _ := app.FindRecordsByFilter("quotes", "", "", 0, 0, nil)
	if len(records) != 0 {
		t.Error("invalid material row must not create a record")
	}
}

func TestHandleQuoteSave_DefaultsDaysAndWorkers(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleQuoteSave(app, testMode)

	form := validQuoteForm()
	form.Set("days", "0")
	form.Set("workers", "")

	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, postForm(form, "/quotes"), rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	records, _ := app.FindRecordsByFilter("quotes", "name = {:name}", "", 1, 0,
		map[string]any{"name": "Test Client"})
	if len(records) == 0 {
		t.Fatal("expected quote to be created")
	}
	q := services.QuoteFromRecord(records[0])
	if q.Days != 1 || q.Workers != 1 {
		t.Errorf("days/workers = %d/%d, want 1/1", q.Days, q.Workers)
	}
}
