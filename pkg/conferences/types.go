package conferences

import "time"

// Event is a brand like GopherCon.
type Event struct {
	ID          uint32
	Name        string
	Slug        string
	Conferences []Conference
}

// Conference is an instance of an event, like GopherCon 2020.
type Conference struct {
	ID        uint32
	Name      string
	Slug      string
	StartDate time.Time
	EndDate   time.Time
	Venue     Venue
}

// Venue hosts a conference.
type Venue struct {
	ID            uint32
	Name          string
	Description   string
	Address       string
	Directions    string
	GoogleMapsURL string
	Capacity      int
}

// Location is a room or space inside a venue.
type Location struct {
	ID            uint32
	Name          string
	Description   string
	Address       string
	Directions    string
	GoogleMapsURL string
	Capacity      int
	VenueID       uint32
}

// ConferenceSlot is any sellable or giftable slot of a conference, such as a
// talk track or a workshop that requires admission.
type ConferenceSlot struct {
	ID          uint32
	Name        string
	Description string
	Cost        int
	Capacity    int
	StartDate   time.Time
	EndDate     time.Time
	// PurchaseableFrom and PurchaseableUntil bound the half-open sale window.
	PurchaseableFrom  time.Time
	PurchaseableUntil time.Time
	// AvailableToPublic is false for slots that cannot be bought individually,
	// e.g. sponsor tickets.
	AvailableToPublic bool
	Location          Location
	ConferenceID      uint32
}

// OnSale reports whether t falls inside [PurchaseableFrom, PurchaseableUntil).
func (s ConferenceSlot) OnSale(t time.Time) bool {
	return !t.Before(s.PurchaseableFrom) && t.Before(s.PurchaseableUntil)
}

// SponsorshipLevel is the tier a sponsor bought.
type SponsorshipLevel int

const (
	SponsorshipLevelNone SponsorshipLevel = iota
	SponsorshipLevelDiamond
	SponsorshipLevelPlatinum
	SponsorshipLevelGold
	SponsorshipLevelSilver
	SponsorshipLevelBronze
	SponsorshipLevelOther
)

var sponsorshipLevelNames = []string{"none", "diamond", "platinum", "gold", "silver", "bronze", "other"}

func (s SponsorshipLevel) String() string {
	if s < 0 || int(s) >= len(sponsorshipLevelNames) {
		return "unknown"
	}
	return sponsorshipLevelNames[s]
}

// ContactRole is the role a sponsor contact plays.
type ContactRole int

const (
	ContactRoleMarketing ContactRole = iota
	ContactRoleLogistics
	ContactRoleTechnical
	ContactRoleOther
	ContactRoleSoleContact
)

var contactRoleNames = []string{"marketing", "logistics", "technical", "other", "sole_contact"}

func (c ContactRole) String() string {
	if c < 0 || int(c) >= len(contactRoleNames) {
		return "unknown"
	}
	return contactRoleNames[c]
}

// Sponsor is a conference sponsor, such as Google.
type Sponsor struct {
	ID               uint32
	Name             string
	Address          string
	Website          string
	SponsorshipLevel SponsorshipLevel
	Contacts         []SponsorContactInformation
	ConferenceID     uint32
}

// SponsorContactInformation is one contact person of a sponsor.
type SponsorContactInformation struct {
	ID    uint32
	Name  string
	Role  ContactRole
	Email string
	Phone string
}

// Job is a job board posting.
type Job struct {
	ID          uint32
	CompanyName string
	Title       string
	Description string
	Link        string
	Discord     string
	Rank        int
	Approved    bool
}

// Paper is a talk proposal submitted to a conference.
type Paper struct {
	ID            uint32
	UserID        string
	ConferenceID  uint32
	Title         string
	ElevatorPitch string
	Description   string
	Notes         string
}

// AnonPaper is a Paper without the submitter's identity, used for blind review.
type AnonPaper struct {
	ID            uint32
	ConferenceID  uint32
	Title         string
	ElevatorPitch string
	Description   string
	Notes         string
}

// VoucherInformation describes a discount voucher. Percentage and
// AmountInCents are mutually exclusive on the backend.
type VoucherInformation struct {
	ConferenceID  uint32
	ValidFrom     time.Time
	ValidTo       time.Time
	Percentage    int
	AmountInCents int64
	LimitInCents  int64
}

type GetAllParams struct{}

type GetAllResponse struct {
	Events []Event
}

type GetConferenceSlotsParams struct {
	ConferenceID uint32
}

type GetConferenceSlotsResponse struct {
	ConferenceSlots []ConferenceSlot
}

type GetCurrentByEventParams struct {
	EventID uint32
}

type GetCurrentByEventResponse struct {
	Event Event
}

type GetConferenceSponsorsParams struct {
	ConferenceID uint32
}

type GetConferenceSponsorsResponse struct {
	Sponsors []Sponsor
}

type UpdateSponsorContactParams struct {
	SponsorContactInformation SponsorContactInformation
}

type UpdateSponsorContactResponse struct{}

type AddPaperParams struct {
	Paper Paper
}

type AddPaperResponse struct {
	PaperID uint32
}

type GetPaperParams struct {
	PaperID uint32
}

type GetPaperResponse struct {
	Paper Paper
}

type ListPapersParams struct {
	ConferenceID uint32
}

type ListPapersResponse struct {
	Papers []Paper
}

type UpdatePaperParams struct {
	Paper Paper
}

type UpdatePaperResponse struct {
	Paper Paper
}

type DeletePaperParams struct {
	PaperID uint32
}

type GetAnonPaperParams struct {
	PaperID uint32
}

type GetAnonPaperResponse struct {
	AnonPaper AnonPaper
}

type ListAnonPapersParams struct {
	ConferenceID uint32
}

type ListAnonPapersResponse struct {
	AnonPapers []AnonPaper
}

type CreateJobParams struct {
	Job Job
}

type CreateJobResponse struct {
	Job Job
}

type GetJobParams struct {
	JobID uint32
}

type GetJobResponse struct {
	Job Job
}

type ListJobsResponse struct {
	Jobs []Job
}

type ListApprovedJobsResponse struct {
	Jobs []Job
}

type UpdateJobParams struct {
	Job Job
}

type UpdateJobResponse struct {
	Job Job
}

type UpdateApproveJobParams struct {
	JobID          uint32
	ApprovedStatus bool
}

type UpdateApproveJobResponse struct {
	Job Job
}

type DeleteJobParams struct {
	JobID uint32
}

type CreateDiscountVoucherParams struct {
	VoucherInformation *VoucherInformation
}

type CreateDiscountVoucherResponse struct {
	VoucherID string
}
