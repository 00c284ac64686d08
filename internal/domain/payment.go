package domain

// PaymentStatus is derived from the two receive dates and never stored.
type PaymentStatus string

const (
	PaymentStatusReceived PaymentStatus = "Received"
	PaymentStatusPartial  PaymentStatus = "Partial"
	PaymentStatusPending  PaymentStatus = "Pending"
)

// DeriveStatus maps receive-date presence to a status.
func DeriveStatus(hasReceiveDate, hasCustomerReceiveDate bool) PaymentStatus {
	switch {
	case hasReceiveDate && hasCustomerReceiveDate:
		return PaymentStatusReceived
	case hasCustomerReceiveDate:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// PaymentRecord is the typed view of a brokerage transaction document.
type PaymentRecord struct {
	Date                string
	UnitNo              string
	ProjectName         string
	OwnerName           string
	OwnerNumber         string
	CustomerName        string
	CustomerNumber      string
	TimePeriod          string
	BasePrice           float64
	OwnerBrokerage      float64
	CustomerBrokerage   float64
	Commission          float64
	ReceiveDate         *string
	CustomerReceiveDate *string
	Employee            string
}

// Status derives the payment status.
func (p PaymentRecord) Status() PaymentStatus {
	return DeriveStatus(p.ReceiveDate != nil, p.CustomerReceiveDate != nil)
}

// PaymentFromDocument reads a payment view out of a stored document.
// Missing or mistyped fields take zero values.
func PaymentFromDocument(doc Document) PaymentRecord {
	return PaymentRecord{
		Date:                doc.String("date"),
		UnitNo:              doc.String("unitNo"),
		ProjectName:         doc.String("projectName"),
		OwnerName:           doc.String("ownerName"),
		OwnerNumber:         doc.String("ownerNumber"),
		CustomerName:        doc.String("customerName"),
		CustomerNumber:      doc.String("customerNumber"),
		TimePeriod:          doc.String("timePeriod"),
		BasePrice:           doc.Amount("basePrice"),
		OwnerBrokerage:      amountWithAlias(doc, "ownerBrokerage", "ownerBro"),
		CustomerBrokerage:   amountWithAlias(doc, "customerBrokerage", "customerBro"),
		Commission:          doc.Amount("commission"),
		ReceiveDate:         optionalString(doc, "receiveDate"),
		CustomerReceiveDate: optionalString(doc, "customerReceiveDate"),
		Employee:            doc.String("employee"),
	}
}

func amountWithAlias(doc Document, key, alias string) float64 {
	if doc.Present(key) {
		return doc.Amount(key)
	}
	return doc.Amount(alias)
}

func optionalString(doc Document, key string) *string {
	if !doc.Present(key) {
		return nil
	}
	s := doc.String(key)
	return &s
}
