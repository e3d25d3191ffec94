package render

// The three fixed layouts. They share every field of DocumentView and differ
// only in arrangement and styling: identical values must appear in each.

const modernLayout = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.InvoiceNumber}}</title>
  <style>
    body { margin: 0; padding: 32px; font-family: "Helvetica Neue", Arial, sans-serif; color: #111827; background: #ffffff; }
    .invoice { max-width: 820px; margin: 0 auto; }
    .masthead { background: #111827; color: #ffffff; padding: 16px 20px; border-radius: 6px; margin-bottom: 24px; }
    .masthead h1 { margin: 0; font-size: 24px; letter-spacing: 0.06em; }
    .masthead .number { color: #9ca3af; font-size: 13px; margin-top: 4px; }
    .parties { display: flex; gap: 48px; margin-bottom: 24px; }
    .parties .label { font-size: 11px; font-weight: 700; color: #6b7280; text-transform: uppercase; margin-bottom: 6px; }
    .parties .name { font-weight: 600; }
    .parties div p { margin: 2px 0; font-size: 14px; }
    .dates { display: flex; gap: 32px; font-size: 14px; margin-bottom: 24px; }
    .dates .label { color: #6b7280; margin-right: 6px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; margin-bottom: 24px; }
    th { text-align: left; font-size: 11px; text-transform: uppercase; color: #6b7280; border-bottom: 2px solid #e5e7eb; padding: 8px 6px; }
    td { padding: 10px 6px; border-bottom: 1px solid #e5e7eb; }
    th.num, td.num { text-align: right; }
    .totals { display: flex; justify-content: flex-end; margin-bottom: 24px; }
    .totals table { width: 280px; margin: 0; }
    .totals td { border: none; padding: 4px 6px; }
    .totals tr.grand td { border-top: 2px solid #111827; font-weight: 700; font-size: 16px; padding-top: 8px; }
    .notes { border-top: 1px solid #e5e7eb; padding-top: 16px; font-size: 13px; color: #374151; }
    .notes .label { font-size: 11px; font-weight: 700; color: #6b7280; text-transform: uppercase; margin-bottom: 6px; }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="masthead">
      <h1>INVOICE</h1>
      <div class="number">{{.InvoiceNumber}}{{if .Status}} &middot; {{.Status}}{{end}}</div>
    </div>

    <div class="parties">
      <div>
        <div class="label">Bill To</div>
        <p class="name">{{.BillTo.Name}}</p>
        {{if .BillTo.Email}}<p>{{.BillTo.Email}}</p>{{end}}
        {{if .BillTo.Address}}<p>{{.BillTo.Address}}</p>{{end}}
      </div>
      <div>
        <div class="label">From</div>
        <p class="name">{{.From.Name}}</p>
        {{if .From.Email}}<p>{{.From.Email}}</p>{{end}}
        {{if .From.Address}}<p>{{.From.Address}}</p>{{end}}
      </div>
    </div>

    <div class="dates">
      <div><span class="label">Issue Date:</span><span>{{.IssueDate}}</span></div>
      <div><span class="label">Due Date:</span><span>{{.DueDate}}</span></div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Description</th>
          <th class="num">Qty</th>
          <th class="num">Price</th>
          {{if .ShowTaxColumn}}<th class="num">Tax</th>{{end}}
          <th class="num">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td>{{.Description}}</td>
          <td class="num">{{formatQty .Quantity}}</td>
          <td class="num">{{formatMoney .UnitPrice $.Currency}}</td>
          {{if $.ShowTaxColumn}}<td class="num">{{formatQty .TaxRate}}%</td>{{end}}
          <td class="num">{{formatMoney .Total $.Currency}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <table>
        <tr><td>Subtotal:</td><td class="num">{{formatMoney .Subtotal .Currency}}</td></tr>
        <tr><td>Discount:</td><td class="num">-{{formatMoney .Discount .Currency}}</td></tr>
        <tr><td>Tax:</td><td class="num">{{formatMoney .Tax .Currency}}</td></tr>
        <tr class="grand"><td>Total:</td><td class="num">{{formatMoney .Total .Currency}}</td></tr>
      </table>
    </div>

    {{if .Notes}}
    <div class="notes">
      <div class="label">Notes</div>
      <p>{{.Notes}}</p>
    </div>
    {{end}}
    {{if .PaymentTerms}}
    <div class="notes">
      <div class="label">Payment Terms</div>
      <p>{{.PaymentTerms}}</p>
    </div>
    {{end}}
  </div>
</body>
</html>
`

const professionalLayout = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.InvoiceNumber}}</title>
  <style>
    body { margin: 0; padding: 32px; font-family: Georgia, "Times New Roman", serif; color: #1f2937; background: #ffffff; }
    .invoice { max-width: 820px; margin: 0 auto; }
    .header { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 20px; }
    .header h1 { margin: 0; font-size: 28px; }
    .header .from { text-align: right; font-size: 14px; }
    .header .from .name { font-weight: 700; }
    .bar { background: #1f2937; color: #ffffff; padding: 10px 16px; display: flex; justify-content: space-between; font-size: 14px; margin-bottom: 24px; }
    .billto { margin-bottom: 24px; font-size: 14px; }
    .billto .label { font-weight: 700; margin-bottom: 4px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; margin-bottom: 24px; }
    thead tr { background: #1f2937; color: #ffffff; }
    th { text-align: left; padding: 10px 8px; font-size: 12px; }
    td { padding: 10px 8px; border-bottom: 1px solid #d1d5db; }
    th.num, td.num { text-align: right; }
    .totals { display: flex; justify-content: flex-end; margin-bottom: 24px; }
    .totals table { width: 300px; margin: 0; }
    .totals td { border: none; padding: 5px 8px; }
    .totals tr.grand td { border-top: 3px double #1f2937; font-weight: 700; font-size: 18px; }
    .notes { font-size: 13px; border-top: 1px solid #d1d5db; padding-top: 14px; }
    .notes .label { font-weight: 700; }
  </style>
</head>
<body>
  <div class="invoice">
    <div class="header">
      <h1>INVOICE</h1>
      <div class="from">
        <div class="name">{{.From.Name}}</div>
        {{if .From.Email}}<div>{{.From.Email}}</div>{{end}}
        {{if .From.Address}}<div>{{.From.Address}}</div>{{end}}
      </div>
    </div>

    <div class="bar">
      <span>Invoice {{.InvoiceNumber}}{{if .Status}} ({{.Status}}){{end}}</span>
      <span>Issued {{.IssueDate}} &middot; Due {{.DueDate}}</span>
    </div>

    <div class="billto">
      <div class="label">Bill To:</div>
      <div>{{.BillTo.Name}}</div>
      {{if .BillTo.Email}}<div>{{.BillTo.Email}}</div>{{end}}
      {{if .BillTo.Address}}<div>{{.BillTo.Address}}</div>{{end}}
    </div>

    <table>
      <thead>
        <tr>
          <th>Description</th>
          <th class="num">Qty</th>
          <th class="num">Price</th>
          {{if .ShowTaxColumn}}<th class="num">Tax</th>{{end}}
          <th class="num">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td>{{.Description}}</td>
          <td class="num">{{formatQty .Quantity}}</td>
          <td class="num">{{formatMoney .UnitPrice $.Currency}}</td>
          {{if $.ShowTaxColumn}}<td class="num">{{formatQty .TaxRate}}%</td>{{end}}
          <td class="num">{{formatMoney .Total $.Currency}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <table>
        <tr><td>Subtotal:</td><td class="num">{{formatMoney .Subtotal .Currency}}</td></tr>
        <tr><td>Discount:</td><td class="num">-{{formatMoney .Discount .Currency}}</td></tr>
        <tr><td>Tax:</td><td class="num">{{formatMoney .Tax .Currency}}</td></tr>
        <tr class="grand"><td>Total:</td><td class="num">{{formatMoney .Total .Currency}}</td></tr>
      </table>
    </div>

    {{if .Notes}}<div class="notes"><span class="label">Notes:</span> {{.Notes}}</div>{{end}}
    {{if .PaymentTerms}}<div class="notes"><span class="label">Payment Terms:</span> {{.PaymentTerms}}</div>{{end}}
  </div>
</body>
</html>
`

const minimalLayout = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.InvoiceNumber}}</title>
  <style>
    body { margin: 0; padding: 32px; font-family: "Helvetica Neue", Arial, sans-serif; color: #000000; background: #ffffff; }
    .invoice { max-width: 820px; margin: 0 auto; }
    h1 { font-size: 40px; margin: 0 0 8px 0; border-bottom: 6px solid #000000; padding-bottom: 8px; }
    .number { font-size: 13px; text-transform: uppercase; letter-spacing: 0.08em; margin-bottom: 28px; }
    .parties { display: grid; grid-template-columns: 1fr 1fr; gap: 24px; margin-bottom: 28px; font-size: 14px; }
    .label { font-weight: 700; text-transform: uppercase; font-size: 11px; letter-spacing: 0.08em; margin-bottom: 6px; }
    .dates { display: flex; gap: 40px; font-size: 13px; text-transform: uppercase; margin-bottom: 28px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; margin-bottom: 28px; border-top: 3px solid #000000; }
    th { text-align: left; text-transform: uppercase; font-size: 11px; letter-spacing: 0.08em; padding: 10px 6px; border-bottom: 2px solid #000000; }
    td { padding: 10px 6px; border-bottom: 1px solid #000000; }
    th.num, td.num { text-align: right; }
    .totals { display: flex; justify-content: flex-end; }
    .totals table { width: 280px; border-top: none; }
    .totals td { border: none; padding: 4px 6px; }
    .totals tr.grand td { border-top: 4px solid #000000; font-weight: 700; font-size: 18px; text-transform: uppercase; padding-top: 10px; }
    .notes { border-top: 2px solid #000000; padding-top: 14px; font-size: 13px; margin-top: 28px; }
  </style>
</head>
<body>
  <div class="invoice">
    <h1>INVOICE</h1>
    <div class="number">{{.InvoiceNumber}}{{if .Status}} &middot; {{.Status}}{{end}}</div>

    <div class="parties">
      <div>
        <div class="label">From</div>
        <div>{{.From.Name}}</div>
        {{if .From.Email}}<div>{{.From.Email}}</div>{{end}}
        {{if .From.Address}}<div>{{.From.Address}}</div>{{end}}
      </div>
      <div>
        <div class="label">To</div>
        <div>{{.BillTo.Name}}</div>
        {{if .BillTo.Email}}<div>{{.BillTo.Email}}</div>{{end}}
        {{if .BillTo.Address}}<div>{{.BillTo.Address}}</div>{{end}}
      </div>
    </div>

    <div class="dates">
      <div><span class="label">Issued</span> {{.IssueDate}}</div>
      <div><span class="label">Due</span> {{.DueDate}}</div>
    </div>

    <table>
      <thead>
        <tr>
          <th>Description</th>
          <th class="num">Qty</th>
          <th class="num">Price</th>
          {{if .ShowTaxColumn}}<th class="num">Tax</th>{{end}}
          <th class="num">Total</th>
        </tr>
      </thead>
      <tbody>
        {{range .Lines}}
        <tr>
          <td>{{.Description}}</td>
          <td class="num">{{formatQty .Quantity}}</td>
          <td class="num">{{formatMoney .UnitPrice $.Currency}}</td>
          {{if $.ShowTaxColumn}}<td class="num">{{formatQty .TaxRate}}%</td>{{end}}
          <td class="num">{{formatMoney .Total $.Currency}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>

    <div class="totals">
      <table>
        <tr><td>SUBTOTAL</td><td class="num">{{formatMoney .Subtotal .Currency}}</td></tr>
        <tr><td>DISCOUNT</td><td class="num">-{{formatMoney .Discount .Currency}}</td></tr>
        <tr><td>TAX</td><td class="num">{{formatMoney .Tax .Currency}}</td></tr>
        <tr class="grand"><td>TOTAL</td><td class="num">{{formatMoney .Total .Currency}}</td></tr>
      </table>
    </div>

    {{if .Notes}}
    <div class="notes">
      <div class="label">Notes</div>
      <div>{{.Notes}}</div>
    </div>
    {{end}}
    {{if .PaymentTerms}}
    <div class="notes">
      <div class="label">Payment Terms</div>
      <div>{{.PaymentTerms}}</div>
    </div>
    {{end}}
  </div>
</body>
</html>
`
