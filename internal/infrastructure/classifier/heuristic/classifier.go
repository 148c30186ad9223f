// Package heuristic implements the filename-driven content classifier.
// There is no real parsing behind it: each profile carries a fixed
// synthesized record, which is what the product simulates today.
package heuristic

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mdashkov/doc-fraud-assistant/internal/core/domain"
	"github.com/mdashkov/doc-fraud-assistant/internal/core/ports"
)

type Classifier struct {
	rng ports.Rand
}

func NewClassifier(rng ports.Rand) *Classifier {
	return &Classifier{rng: rng}
}

// Classify maps a filename to one of five profiles. Rules are tested in a
// fixed order and the first substring match wins, so a name matching
// several groups always resolves the same way.
func (c *Classifier) Classify(filename string, sizeBytes int64, mimeType string) domain.ContentRecord {
	lower := strings.ToLower(filename)

	switch {
	case strings.Contains(lower, "resume") || strings.Contains(lower, "cv"):
		return resumeRecord()
	case strings.Contains(lower, "invoice") || strings.Contains(lower, "bill"):
		return invoiceRecord()
	case strings.Contains(lower, "contract") || strings.Contains(lower, "agreement"):
		return contractRecord()
	case strings.Contains(lower, "report") || strings.Contains(lower, "analysis"):
		return reportRecord()
	default:
		return c.generalRecord(filename, sizeBytes, mimeType)
	}
}

func resumeRecord() domain.ContentRecord {
	return domain.ContentRecord{
		DocumentType: domain.TypeResume,
		Resume: &domain.ResumeDetails{
			Name:        "John Smith",
			Email:       "john.smith@email.com",
			Phone:       "+1 (555) 123-4567",
			Location:    "New York, NY",
			Experience:  "5 years",
			CurrentRole: "Senior Software Engineer",
			Education:   "Bachelor of Computer Science",
			Skills:      []string{"JavaScript", "React", "Node.js", "Python", "AWS", "Docker"},
			Projects: []domain.Project{
				{
					Name:         "E-commerce Platform",
					Description:  "Built a full-stack e-commerce platform using React and Node.js",
					Technologies: []string{"React", "Node.js", "MongoDB", "Stripe API"},
					Duration:     "6 months",
				},
				{
					Name:         "Task Management App",
					Description:  "Developed a collaborative task management application",
					Technologies: []string{"Vue.js", "Express.js", "PostgreSQL", "Socket.io"},
					Duration:     "4 months",
				},
				{
					Name:         "Data Analytics Dashboard",
					Description:  "Created a real-time analytics dashboard for business metrics",
					Technologies: []string{"React", "D3.js", "Python", "FastAPI"},
					Duration:     "3 months",
				},
			},
			WorkHistory: []domain.WorkEntry{
				{
					Company:  "Tech Solutions Inc.",
					Position: "Senior Software Engineer",
					Duration: "2021 - Present",
					Responsibilities: []string{
						"Led development team of 5 engineers",
						"Architected microservices infrastructure",
						"Implemented CI/CD pipelines",
					},
				},
				{
					Company:  "StartupXYZ",
					Position: "Full Stack Developer",
					Duration: "2019 - 2021",
					Responsibilities: []string{
						"Developed customer-facing web applications",
						"Optimized database performance",
						"Collaborated with design team",
					},
				},
			},
		},
		TextContent: []string{
			"Experienced software engineer with 5+ years in full-stack development",
			"Proficient in modern web technologies including React, Node.js, and cloud platforms",
			"Led multiple successful projects from conception to deployment",
			"Strong background in agile development and team leadership",
		},
		Metadata: map[string]string{
			"createdDate":  "2024-01-15",
			"lastModified": "2024-01-20",
			"wordCount":    "450",
			"sections":     "Contact Info, Summary, Experience, Education, Skills, Projects",
		},
	}
}

func invoiceRecord() domain.ContentRecord {
	return domain.ContentRecord{
		DocumentType: domain.TypeInvoice,
		Invoice: &domain.InvoiceDetails{
			InvoiceNumber: "INV-2024-001",
			Date:          "2024-01-15",
			DueDate:       "2024-02-15",
			Vendor:        "ABC Services Ltd.",
			Client:        "XYZ Corporation",
			Amount:        "$2,450.00",
			Tax:           "$245.00",
			Total:         "$2,695.00",
			Items: []domain.LineItem{
				{Description: "Web Development Services", Quantity: 40, Rate: "$50/hr", Amount: "$2,000"},
				{Description: "Consulting Services", Quantity: 10, Rate: "$45/hr", Amount: "$450"},
			},
		},
		TextContent: []string{
			"Professional services invoice for web development and consulting",
			"Payment terms: Net 30 days",
			"Services provided during January 2024",
		},
		Metadata: map[string]string{
			"currency":      "USD",
			"paymentStatus": "Pending",
			"category":      "Professional Services",
		},
	}
}

func contractRecord() domain.ContentRecord {
	return domain.ContentRecord{
		DocumentType: domain.TypeContract,
		Contract: &domain.ContractDetails{
			ContractType:   "Service Agreement",
			Parties:        []string{"Company A", "Company B"},
			EffectiveDate:  "2024-01-01",
			ExpirationDate: "2024-12-31",
			Value:          "$50,000",
			Terms: []string{
				"Monthly service delivery",
				"24/7 support included",
				"Quarterly performance reviews",
				"30-day termination notice required",
			},
		},
		TextContent: []string{
			"This agreement outlines the terms and conditions for professional services",
			"Both parties agree to the specified deliverables and timelines",
			"Payment schedule: Monthly invoicing with Net 30 terms",
		},
		Metadata: map[string]string{
			"jurisdiction":    "New York",
			"signatureStatus": "Pending",
			"version":         "1.2",
		},
	}
}

func reportRecord() domain.ContentRecord {
	return domain.ContentRecord{
		DocumentType: domain.TypeReport,
		Report: &domain.ReportDetails{
			ReportTitle: "Q4 2023 Performance Analysis",
			Author:      "Analytics Team",
			Date:        "2024-01-10",
			Metrics: domain.ReportMetrics{
				Revenue:      "$1.2M",
				Growth:       "+15%",
				Customers:    "2,500",
				Satisfaction: "4.2/5",
			},
			Findings: []string{
				"Revenue increased by 15% compared to Q3",
				"Customer acquisition cost decreased by 8%",
				"Product satisfaction scores improved significantly",
				"Market expansion opportunities identified",
			},
			Recommendations: []string{
				"Increase marketing budget for Q1 2024",
				"Expand customer support team",
				"Launch new product features based on feedback",
			},
		},
		TextContent: []string{
			"Comprehensive analysis of business performance metrics",
			"Data-driven insights and strategic recommendations",
			"Quarterly comparison and trend analysis included",
		},
		Metadata: map[string]string{
			"confidentiality": "Internal Use Only",
			"department":      "Analytics",
			"reviewStatus":    "Approved",
		},
	}
}

func (c *Classifier) generalRecord(filename string, sizeBytes int64, mimeType string) domain.ContentRecord {
	return domain.ContentRecord{
		DocumentType: domain.TypeGeneral,
		General: &domain.GeneralDetails{
			Title:             stripExtension(filename),
			SizeBytes:         sizeBytes,
			MimeType:          mimeType,
			Sections:          c.rng.IntN(5) + 2,
			EstimatedReadTime: fmt.Sprintf("%d minutes", sizeBytes/1000),
		},
		TextContent: []string{
			"Document contains structured information and data",
			"Multiple sections with detailed content",
			"Professional formatting and layout maintained",
		},
		Metadata: map[string]string{
			"pageCount": fmt.Sprintf("%d", sizeBytes/50000+1),
			"language":  "English",
			"encoding":  "UTF-8",
		},
	}
}

func stripExtension(name string) string {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)]
}
