package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

var views = template.Must(template.New("views").Parse(layoutHTML + loginHTML + quoteListHTML + quoteFormHTML))

// render wraps an html/template execution as a templ.Component so
// handlers can treat pages and fragments uniformly.
func render(name string, data any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return views.ExecuteTemplate(w, name, data)
	})
}

// LoginPage renders the password gate.
func LoginPage(data LoginData) templ.Component {
	return render("login_page", data)
}

// QuoteListPage renders the full quotes list page.
func QuoteListPage(data QuoteListData) templ.Component {
	return render("quote_list_page", data)
}

// QuoteListContent renders just the table fragment for HTMX swaps.
func QuoteListContent(data QuoteListData) templ.Component {
	return render("quote_list_content", data)
}

// QuoteFormPage renders the full create/edit page.
func QuoteFormPage(data QuoteFormData) templ.Component {
	return render("quote_form_page", data)
}

// QuoteFormContent renders just the form fragment for HTMX swaps.
func QuoteFormContent(data QuoteFormData) templ.Component {
	return render("quote_form_content", data)
}

const layoutHTML = `
{{define "head"}}
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>Quote Admin</title>
	<link rel="stylesheet" href="/static/app.css">
	<script src="/static/htmx.min.js"></script>
	<script>
	document.addEventListener("showToast", function (evt) {
		var d = evt.detail || {};
		showToast(d.message, d.type);
	});
	document.addEventListener("DOMContentLoaded", function () {
		var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
		if (!m) return;
		try {
			var d = JSON.parse(decodeURIComponent(m[1]));
			showToast(d.message, d.type);
		} catch (e) {}
		document.cookie = "flash_toast=; Path=/; Max-Age=0";
	});
	function showToast(message, type) {
		if (!message) return;
		var el = document.createElement("div");
		el.className = "toast toast-" + (type || "info");
		el.textContent = message;
		document.body.appendChild(el);
		setTimeout(function () { el.remove(); }, 4000);
	}
	</script>
</head>
{{end}}

{{define "nav"}}
<nav class="navbar">
	<a href="/quotes" class="brand">Quote Admin</a>
	<div class="nav-actions">
		<a href="/quotes/new" class="btn btn-primary">New Quote</a>
		<form method="post" action="/logout" class="inline">
			<button type="submit" class="btn btn-ghost">Log out</button>
		</form>
	</div>
</nav>
{{end}}
`

const loginHTML = `
{{define "login_page"}}
<!DOCTYPE html>
<html lang="en">
{{template "head" .}}
<body class="login-body">
	<main class="login-card">
		<h1>Quote Admin</h1>
		{{if .Error}}<p class="form-error">{{.Error}}</p>{{end}}
		<form method="post" action="/login">
			<label for="password">Password</label>
			<input type="password" id="password" name="password" autofocus required>
			<button type="submit" class="btn btn-primary">Sign in</button>
		</form>
	</main>
</body>
</html>
{{end}}
`

const quoteListHTML = `
{{define "quote_list_page"}}
<!DOCTYPE html>
<html lang="en">
{{template "head" .}}
<body>
	{{template "nav" .}}
	<main id="content" class="container">
		{{template "quote_list_content" .}}
	</main>
</body>
</html>
{{end}}

{{define "quote_list_content"}}
<section id="quote-list">
	<form class="filter-bar"
		hx-get="/quotes" hx-target="#quote-list" hx-swap="outerHTML"
		hx-push-url="true">
		<select name="field">
			{{range .FieldOptions}}
			<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>
			{{end}}
		</select>
		<input type="search" name="value" value="{{.Filter.Value}}"
			placeholder="Filter quotes..."
			hx-get="/quotes" hx-target="#quote-list" hx-swap="outerHTML"
			hx-trigger="input changed delay:300ms" hx-include="closest form">
		<select name="sort"
			hx-get="/quotes" hx-target="#quote-list" hx-swap="outerHTML"
			hx-include="closest form">
			{{range .SortOptions}}
			<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>
			{{end}}
		</select>
		<div class="export-links">
			<a href="/quotes/export/csv" class="btn btn-ghost">CSV</a>
			<a href="/quotes/export/excel" class="btn btn-ghost">Excel</a>
		</div>
	</form>

	<table class="quote-table">
		<thead>
			<tr>
				<th>Name</th>
				<th>Email</th>
				<th>Service</th>
				<th>Location</th>
				<th class="num">Materials</th>
				<th class="num">Total</th>
				<th>Date</th>
				<th></th>
			</tr>
		</thead>
		<tbody>
			{{range .Items}}
			<tr>
				<td><a href="/quotes/{{.ID}}/edit">{{.Name}}</a></td>
				<td>{{.Email}}</td>
				<td>{{.Service}}</td>
				<td>{{.Location}}</td>
				<td class="num">{{.MaterialCount}}</td>
				<td class="num">{{.Total}}</td>
				<td>{{.CreatedDate}}</td>
				<td class="row-actions">
					<a href="/quotes/{{.ID}}/export/pdf" class="btn btn-ghost">PDF</a>
					<button class="btn btn-danger"
						hx-delete="/quotes/{{.ID}}"
						hx-target="#quote-list" hx-swap="outerHTML"
						hx-disabled-elt="this"
						hx-confirm="Delete this quote?">Delete</button>
				</td>
			</tr>
			{{else}}
			<tr><td colspan="8" class="empty">No quotes found.</td></tr>
			{{end}}
		</tbody>
		<tfoot>
			<tr>
				<td colspan="5">{{.TotalCount}} quote(s)</td>
				<td class="num">{{.SumTotal}}</td>
				<td colspan="2"></td>
			</tr>
		</tfoot>
	</table>
</section>
{{end}}
`

const quoteFormHTML = `
{{define "quote_form_page"}}
<!DOCTYPE html>
<html lang="en">
{{template "head" .}}
<body>
	{{template "nav" .}}
	<main id="content" class="container">
		{{template "quote_form_content" .}}
	</main>
</body>
</html>
{{end}}

{{define "quote_form_content"}}
<section id="quote-form">
	<h1>{{if .IsNew}}New Quote{{else}}Edit Quote{{end}}</h1>
	<form {{if .IsNew}}hx-post="/quotes"{{else}}hx-post="/quotes/{{.ID}}/save"{{end}}
		hx-target="#quote-form" hx-swap="outerHTML"
		hx-disabled-elt="find button[type='submit']">

		<fieldset>
			<legend>Client</legend>
			<label>Name
				<input type="text" name="name" value="{{.Name}}">
				{{with index .Errors "name"}}<span class="form-error">{{.}}</span>{{end}}
			</label>
			<label>Email
				<input type="email" name="email" value="{{.Email}}">
				{{with index .Errors "email"}}<span class="form-error">{{.}}</span>{{end}}
			</label>
			<label>Phone
				<input type="text" name="phone" value="{{.Phone}}">
			</label>
			<label>Location
				<input type="text" name="location" value="{{.Location}}">
				{{with index .Errors "location"}}<span class="form-error">{{.}}</span>{{end}}
			</label>
			<label>Service
				<select name="service">
					{{range .ServiceOptions}}
					<option value="{{.Value}}" {{if .Selected}}selected{{end}}>{{.Label}}</option>
					{{end}}
				</select>
			</label>
		</fieldset>

		<fieldset>
			<legend>Materials</legend>
			{{with index .Errors "materials"}}<p class="form-error">{{.}}</p>{{end}}
			<table class="materials-table" id="materials-rows">
				<thead>
					<tr><th>Material</th><th class="num">Qty</th><th class="num">Unit Price</th><th class="num">Line Total</th><th></th></tr>
				</thead>
				<tbody>
					{{range .Materials}}
					<tr>
						<td><input type="text" name="material_name" value="{{.Name}}"></td>
						<td><input type="text" name="material_qty" value="{{.Quantity}}" class="num"></td>
						<td><input type="text" name="material_price" value="{{.UnitPrice}}" class="num"></td>
						<td class="num">{{.LineTotal}}</td>
						<td><button type="button" class="btn btn-ghost" onclick="this.closest('tr').remove()">Remove</button></td>
					</tr>
					{{end}}
					<tr>
						<td><input type="text" name="material_name" placeholder="Add material..."></td>
						<td><input type="text" name="material_qty" class="num"></td>
						<td><input type="text" name="material_price" class="num"></td>
						<td class="num"></td>
						<td></td>
					</tr>
				</tbody>
			</table>
		</fieldset>

		<fieldset>
			<legend>Pricing</legend>
			<label>Labor
				<input type="text" name="labor" value="{{.Labor}}" class="num">
				{{with index .Errors "labor"}}<span class="form-error">{{.}}</span>{{end}}
			</label>
			<label>Fees
				<input type="text" name="fees" value="{{.Fees}}" class="num">
				{{with index .Errors "fees"}}<span class="form-error">{{.}}</span>{{end}}
			</label>
			<label>Discount ({{.DiscountUnit}})
				<input type="text" name="discount" value="{{.Discount}}" class="num">
				{{with index .Errors "discount"}}<span class="form-error">{{.}}</span>{{end}}
			</label>
			<label>Days
				<input type="number" name="days" value="{{.Days}}" min="1">
			</label>
			<label>Workers
				<input type="number" name="workers" value="{{.Workers}}" min="1">
			</label>
		</fieldset>

		{{if not .IsNew}}
		<dl class="pricing-summary">
			<dt>Materials Total</dt><dd>{{.MaterialsTotal}}</dd>
			<dt>Discount</dt><dd>{{.DiscountAmount}}</dd>
			<dt>Total</dt><dd class="grand-total">{{.Total}}</dd>
		</dl>
		{{end}}

		<div class="form-actions">
			<button type="submit" class="btn btn-primary">{{if .IsNew}}Create Quote{{else}}Save Changes{{end}}</button>
			<a href="/quotes" class="btn btn-ghost">Cancel</a>
		</div>
	</form>
</section>
{{end}}
`
