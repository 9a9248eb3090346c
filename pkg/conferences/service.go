package conferences

import "context"

// Namespace prefixes every RPC name of this service.
const Namespace = "conferences"

// Caller performs one RPC round trip. *transport.BaseClient implements it.
type Caller interface {
	Do(ctx context.Context, rpc string, params, out any) error
	DoVoid(ctx context.Context, rpc string, params any) error
}

// ServiceClient exposes one method per conferences RPC.
type ServiceClient struct {
	base Caller
}

// NewServiceClient wraps base.
func NewServiceClient(base Caller) *ServiceClient {
	return &ServiceClient{base: base}
}

func rpcName(method string) string { return Namespace + "." + method }

func call[R any](ctx context.Context, s *ServiceClient, method string, params any) (*R, error) {
	var out R
	if err := s.base.Do(ctx, rpcName(method), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAll retrieves all events and their conferences.
func (s *ServiceClient) GetAll(ctx context.Context, params *GetAllParams) (*GetAllResponse, error) {
	return call[GetAllResponse](ctx, s, "GetAll", params)
}

// GetConferenceSlots retrieves all slots for a conference.
func (s *ServiceClient) GetConferenceSlots(ctx context.Context, params *GetConferenceSlotsParams) (*GetConferenceSlotsResponse, error) {
	return call[GetConferenceSlotsResponse](ctx, s, "GetConferenceSlots", params)
}

// GetCurrentByEvent retrieves the current conference of an event.
func (s *ServiceClient) GetCurrentByEvent(ctx context.Context, params *GetCurrentByEventParams) (*GetCurrentByEventResponse, error) {
	return call[GetCurrentByEventResponse](ctx, s, "GetCurrentByEvent", params)
}

// GetConferenceSponsors retrieves the sponsors of a conference. The backend
// requires an auth token for this RPC.
func (s *ServiceClient) GetConferenceSponsors(ctx context.Context, params *GetConferenceSponsorsParams) (*GetConferenceSponsorsResponse, error) {
	return call[GetConferenceSponsorsResponse](ctx, s, "GetConferenceSponsors", params)
}

// UpdateSponsorContact overwrites a sponsor contact by ID.
func (s *ServiceClient) UpdateSponsorContact(ctx context.Context, params *UpdateSponsorContactParams) (*UpdateSponsorContactResponse, error) {
	return call[UpdateSponsorContactResponse](ctx, s, "UpdateSponsorContact", params)
}

// AddPaper submits a paper and returns its new ID.
func (s *ServiceClient) AddPaper(ctx context.Context, params *AddPaperParams) (*AddPaperResponse, error) {
	return call[AddPaperResponse](ctx, s, "AddPaper", params)
}

func (s *ServiceClient) GetPaper(ctx context.Context, params *GetPaperParams) (*GetPaperResponse, error) {
	return call[GetPaperResponse](ctx, s, "GetPaper", params)
}

func (s *ServiceClient) ListPapers(ctx context.Context, params *ListPapersParams) (*ListPapersResponse, error) {
	return call[ListPapersResponse](ctx, s, "ListPapers", params)
}

func (s *ServiceClient) UpdatePaper(ctx context.Context, params *UpdatePaperParams) (*UpdatePaperResponse, error) {
	return call[UpdatePaperResponse](ctx, s, "UpdatePaper", params)
}

func (s *ServiceClient) DeletePaper(ctx context.Context, params *DeletePaperParams) error {
	return s.base.DoVoid(ctx, rpcName("DeletePaper"), params)
}

// GetAnonPaper retrieves a paper without the submitter's identity.
func (s *ServiceClient) GetAnonPaper(ctx context.Context, params *GetAnonPaperParams) (*GetAnonPaperResponse, error) {
	return call[GetAnonPaperResponse](ctx, s, "GetAnonPaper", params)
}

func (s *ServiceClient) ListAnonPapers(ctx context.Context, params *ListAnonPapersParams) (*ListAnonPapersResponse, error) {
	return call[ListAnonPapersResponse](ctx, s, "ListAnonPapers", params)
}

func (s *ServiceClient) CreateJob(ctx context.Context, params *CreateJobParams) (*CreateJobResponse, error) {
	return call[CreateJobResponse](ctx, s, "CreateJob", params)
}

func (s *ServiceClient) GetJob(ctx context.Context, params *GetJobParams) (*GetJobResponse, error) {
	return call[GetJobResponse](ctx, s, "GetJob", params)
}

// ListJobs retrieves every job, approved or not, ordered by rank.
func (s *ServiceClient) ListJobs(ctx context.Context) (*ListJobsResponse, error) {
	return call[ListJobsResponse](ctx, s, "ListJobs", nil)
}

// ListApprovedJobs retrieves approved jobs ordered by rank.
func (s *ServiceClient) ListApprovedJobs(ctx context.Context) (*ListApprovedJobsResponse, error) {
	return call[ListApprovedJobsResponse](ctx, s, "ListApprovedJobs", nil)
}

func (s *ServiceClient) UpdateJob(ctx context.Context, params *UpdateJobParams) (*UpdateJobResponse, error) {
	return call[UpdateJobResponse](ctx, s, "UpdateJob", params)
}

// UpdateApproveJob sets the approval flag of a job.
func (s *ServiceClient) UpdateApproveJob(ctx context.Context, params *UpdateApproveJobParams) (*UpdateApproveJobResponse, error) {
	return call[UpdateApproveJobResponse](ctx, s, "UpdateApproveJob", params)
}

func (s *ServiceClient) DeleteJob(ctx context.Context, params *DeleteJobParams) error {
	return s.base.DoVoid(ctx, rpcName("DeleteJob"), params)
}

// CreateDiscountVoucher creates a voucher for a conference and returns its ID.
func (s *ServiceClient) CreateDiscountVoucher(ctx context.Context, params *CreateDiscountVoucherParams) (*CreateDiscountVoucherResponse, error) {
	return call[CreateDiscountVoucherResponse](ctx, s, "CreateDiscountVoucher", params)
}
