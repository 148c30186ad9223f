package domain

import "strconv"

type DocumentType string

const (
	TypeResume   DocumentType = "Resume/CV"
	TypeInvoice  DocumentType = "Invoice"
	TypeContract DocumentType = "Contract/Agreement"
	TypeReport   DocumentType = "Business Report"
	TypeGeneral  DocumentType = "General Document"
)

// ContentRecord is the structured content synthesized for a document at
// upload time. Exactly one of the detail pointers is populated and it
// always matches DocumentType, so consumers never type-switch on loose
// maps to reach a field.
type ContentRecord struct {
	DocumentType DocumentType     `json:"document_type"`
	Resume       *ResumeDetails   `json:"resume,omitempty"`
	Invoice      *InvoiceDetails  `json:"invoice,omitempty"`
	Contract     *ContractDetails `json:"contract,omitempty"`
	Report       *ReportDetails   `json:"report,omitempty"`
	General      *GeneralDetails  `json:"general,omitempty"`

	TextContent []string          `json:"text_content"`
	Metadata    map[string]string `json:"metadata"`
}

type ResumeDetails struct {
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Location    string      `json:"location"`
	Experience  string      `json:"experience"`
	CurrentRole string      `json:"current_role"`
	Education   string      `json:"education"`
	Skills      []string    `json:"skills"`
	Projects    []Project   `json:"projects"`
	WorkHistory []WorkEntry `json:"work_history"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Duration     string   `json:"duration"`
}

type WorkEntry struct {
	Company          string   `json:"company"`
	Position         string   `json:"position"`
	Duration         string   `json:"duration"`
	Responsibilities []string `json:"responsibilities"`
}

type InvoiceDetails struct {
	InvoiceNumber string     `json:"invoice_number"`
	Date          string     `json:"date"`
	DueDate       string     `json:"due_date"`
	Vendor        string     `json:"vendor"`
	Client        string     `json:"client"`
	Amount        string     `json:"amount"`
	Tax           string     `json:"tax"`
	Total         string     `json:"total"`
	Items         []LineItem `json:"items"`
}

type LineItem struct {
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

type ContractDetails struct {
	ContractType   string   `json:"contract_type"`
	Parties        []string `json:"parties"`
	EffectiveDate  string   `json:"effective_date"`
	ExpirationDate string   `json:"expiration_date"`
	Value          string   `json:"value"`
	Terms          []string `json:"terms"`
}

type ReportDetails struct {
	ReportTitle     string        `json:"report_title"`
	Author          string        `json:"author"`
	Date            string        `json:"date"`
	Metrics         ReportMetrics `json:"key_metrics"`
	Findings        []string      `json:"findings"`
	Recommendations []string      `json:"recommendations"`
}

type ReportMetrics struct {
	Revenue      string `json:"revenue"`
	Growth       string `json:"growth"`
	Customers    string `json:"customers"`
	Satisfaction string `json:"satisfaction"`
}

type GeneralDetails struct {
	Title             string `json:"title"`
	SizeBytes         int64  `json:"size_bytes"`
	MimeType          string `json:"mime_type"`
	Sections          int    `json:"sections"`
	EstimatedReadTime string `json:"estimated_read_time"`
}

type FieldKind int

const (
	FieldText FieldKind = iota
	FieldList
	FieldObject
)

// Field is one key-information entry in its declaration order. The intent
// router's generic lookup, summary block, and fallback templates all walk
// this view instead of the typed detail structs, so "the first N keys" is
// deterministic for every document type.
type Field struct {
	Key    string
	Kind   FieldKind
	Text   string
	List   []string
	Object []Field
}

// Fields returns the ordered key-information view for the populated
// profile. Entries that are collections of structured records (projects,
// work history, invoice items) surface as lists of their display names.
func (c ContentRecord) Fields() []Field {
	switch {
	case c.Resume != nil:
		return c.Resume.fields()
	case c.Invoice != nil:
		return c.Invoice.fields()
	case c.Contract != nil:
		return c.Contract.fields()
	case c.Report != nil:
		return c.Report.fields()
	case c.General != nil:
		return c.General.fields()
	default:
		return nil
	}
}

// FieldKeys returns at most limit field keys in order; limit <= 0 means all.
func (c ContentRecord) FieldKeys(limit int) []string {
	fields := c.Fields()
	if limit <= 0 || limit > len(fields) {
		limit = len(fields)
	}
	keys := make([]string, 0, limit)
	for _, f := range fields[:limit] {
		keys = append(keys, f.Key)
	}
	return keys
}

func (r *ResumeDetails) fields() []Field {
	projects := make([]string, 0, len(r.Projects))
	for _, p := range r.Projects {
		projects = append(projects, p.Name)
	}
	history := make([]string, 0, len(r.WorkHistory))
	for _, w := range r.WorkHistory {
		history = append(history, w.Position+" at "+w.Company)
	}
	return []Field{
		{Key: "name", Kind: FieldText, Text: r.Name},
		{Key: "email", Kind: FieldText, Text: r.Email},
		{Key: "phone", Kind: FieldText, Text: r.Phone},
		{Key: "location", Kind: FieldText, Text: r.Location},
		{Key: "experience", Kind: FieldText, Text: r.Experience},
		{Key: "currentRole", Kind: FieldText, Text: r.CurrentRole},
		{Key: "education", Kind: FieldText, Text: r.Education},
		{Key: "skills", Kind: FieldList, List: r.Skills},
		{Key: "projects", Kind: FieldList, List: projects},
		{Key: "workHistory", Kind: FieldList, List: history},
	}
}

func (i *InvoiceDetails) fields() []Field {
	items := make([]string, 0, len(i.Items))
	for _, it := range i.Items {
		items = append(items, it.Description)
	}
	return []Field{
		{Key: "invoiceNumber", Kind: FieldText, Text: i.InvoiceNumber},
		{Key: "date", Kind: FieldText, Text: i.Date},
		{Key: "dueDate", Kind: FieldText, Text: i.DueDate},
		{Key: "vendor", Kind: FieldText, Text: i.Vendor},
		{Key: "client", Kind: FieldText, Text: i.Client},
		{Key: "amount", Kind: FieldText, Text: i.Amount},
		{Key: "tax", Kind: FieldText, Text: i.Tax},
		{Key: "total", Kind: FieldText, Text: i.Total},
		{Key: "items", Kind: FieldList, List: items},
	}
}

func (ct *ContractDetails) fields() []Field {
	return []Field{
		{Key: "contractType", Kind: FieldText, Text: ct.ContractType},
		{Key: "parties", Kind: FieldList, List: ct.Parties},
		{Key: "effectiveDate", Kind: FieldText, Text: ct.EffectiveDate},
		{Key: "expirationDate", Kind: FieldText, Text: ct.ExpirationDate},
		{Key: "value", Kind: FieldText, Text: ct.Value},
		{Key: "terms", Kind: FieldList, List: ct.Terms},
	}
}

func (r *ReportDetails) fields() []Field {
	return []Field{
		{Key: "reportTitle", Kind: FieldText, Text: r.ReportTitle},
		{Key: "author", Kind: FieldText, Text: r.Author},
		{Key: "date", Kind: FieldText, Text: r.Date},
		{Key: "keyMetrics", Kind: FieldObject, Object: []Field{
			{Key: "revenue", Kind: FieldText, Text: r.Metrics.Revenue},
			{Key: "growth", Kind: FieldText, Text: r.Metrics.Growth},
			{Key: "customers", Kind: FieldText, Text: r.Metrics.Customers},
			{Key: "satisfaction", Kind: FieldText, Text: r.Metrics.Satisfaction},
		}},
		{Key: "findings", Kind: FieldList, List: r.Findings},
		{Key: "recommendations", Kind: FieldList, List: r.Recommendations},
	}
}

func (g *GeneralDetails) fields() []Field {
	return []Field{
		{Key: "title", Kind: FieldText, Text: g.Title},
		{Key: "size", Kind: FieldText, Text: strconv.FormatInt(g.SizeBytes, 10)},
		{Key: "type", Kind: FieldText, Text: g.MimeType},
		{Key: "sections", Kind: FieldText, Text: strconv.Itoa(g.Sections)},
		{Key: "estimatedReadTime", Kind: FieldText, Text: g.EstimatedReadTime},
	}
}
