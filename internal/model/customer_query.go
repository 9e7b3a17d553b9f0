package model

import "time"

// QueryStatus reflects the outcome of the last contact with the customer
type QueryStatus string

const (
	// QueryStatusInterested means customer showed interest
	QueryStatusInterested QueryStatus = "Interested"
	// QueryStatusNotInterested means customer declined
	QueryStatusNotInterested QueryStatus = "Not Interested"
	// QueryStatusAlreadyBooked means customer booked with someone else already
	QueryStatusAlreadyBooked QueryStatus = "Already Booked"
	// QueryStatusNotRespond means customer didn't answer
	QueryStatusNotRespond QueryStatus = "Not Respond"
	// QueryStatusPostponed means customer asked to be contacted later
	QueryStatusPostponed QueryStatus = "Postponed"
)

// Valid reports whether status is one of the known literals
func (s QueryStatus) Valid() bool {
	switch s {
	case QueryStatusInterested, QueryStatusNotInterested, QueryStatusAlreadyBooked,
		QueryStatusNotRespond, QueryStatusPostponed:
		return true
	}
	return false
}

// QuotationSend reflects the channel a quotation was sent over
type QuotationSend string

const (
	// QuotationSendNo means no quotation was sent yet
	QuotationSendNo QuotationSend = "No"
	// QuotationSendChat means quotation was sent over chat
	QuotationSendChat QuotationSend = "Send Over Chat"
	// QuotationSendEmail means quotation was sent over email
	QuotationSendEmail QuotationSend = "Send Over Email"
	// QuotationSendChatAndCall means quotation was sent over chat and discussed in a call
	QuotationSendChatAndCall QuotationSend = "Send Over Chat and Call"
)

// Valid reports whether q is one of the known literals
func (q QuotationSend) Valid() bool {
	switch q {
	case QuotationSendNo, QuotationSendChat, QuotationSendEmail, QuotationSendChatAndCall:
		return true
	}
	return false
}

// CreatedAtDisplayFormat is the rendered form of CreatedAt used on list
// screens, in exports and in free-text search
const CreatedAtDisplayFormat = "1/2/2006, 3:04:05 PM"

// CustomerQuery is a single customer query record
type CustomerQuery struct {
	ID            string        `json:"id" bson:"_id,omitempty"`
	Name          string        `json:"name" bson:"name"`
	Number        string        `json:"number" bson:"number"`
	Email         string        `json:"email" bson:"email"`
	City          string        `json:"city" bson:"city"`
	QueryStatus   QueryStatus   `json:"queryStatus" bson:"queryStatus"`
	QuotationSend QuotationSend `json:"quotationSend" bson:"quotationSend"`
	Query         string        `json:"query" bson:"query"`
	Remarks       string        `json:"remarks" bson:"remarks"`
	CreatedBy     string        `json:"createdBy" bson:"createdBy"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
}

// CreatedAtDisplay renders CreatedAt the way it is shown to users.
// Zero time renders as an empty string
func (c *CustomerQuery) CreatedAtDisplay() string {
	if c.CreatedAt.IsZero() {
		return ""
	}
	return c.CreatedAt.Format(CreatedAtDisplayFormat)
}

// ApplyEdit overwrites every editable field from upd in one go.
// ID, CreatedBy and CreatedAt are write-once and never touched
func (c *CustomerQuery) ApplyEdit(upd *CustomerQuery) {
	c.Name = upd.Name
	c.Number = upd.Number
	c.Email = upd.Email
	c.City = upd.City
	c.QueryStatus = upd.QueryStatus
	c.QuotationSend = upd.QuotationSend
	c.Query = upd.Query
	c.Remarks = upd.Remarks
}
