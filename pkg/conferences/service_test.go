package conferences

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// fakeCaller records the last call and replies with a canned JSON document.
type fakeCaller struct {
	rpc    string
	params any
	void   bool
	reply  string
	err    error
}

func (f *fakeCaller) Do(_ context.Context, rpc string, params, out any) error {
	f.rpc, f.params = rpc, params
	if f.err != nil {
		return f.err
	}
	reply := f.reply
	if reply == "" {
		reply = "{}"
	}
	return json.Unmarshal([]byte(reply), out)
}

func (f *fakeCaller) DoVoid(_ context.Context, rpc string, params any) error {
	f.rpc, f.params, f.void = rpc, params, true
	return f.err
}

func TestServiceClientDelegatesEveryRPC(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		rpc    string
		params any
		void   bool
		invoke func(s *ServiceClient, p any) error
	}{
		{"GetAll", &GetAllParams{}, false, func(s *ServiceClient, p any) error {
			_, err := s.GetAll(ctx, p.(*GetAllParams))
			return err
		}},
		{"GetConferenceSlots", &GetConferenceSlotsParams{ConferenceID: 3}, false, func(s *ServiceClient, p any) error {
			_, err := s.GetConferenceSlots(ctx, p.(*GetConferenceSlotsParams))
			return err
		}},
		{"GetCurrentByEvent", &GetCurrentByEventParams{EventID: 1}, false, func(s *ServiceClient, p any) error {
			_, err := s.GetCurrentByEvent(ctx, p.(*GetCurrentByEventParams))
			return err
		}},
		{"GetConferenceSponsors", &GetConferenceSponsorsParams{ConferenceID: 2}, false, func(s *ServiceClient, p any) error {
			_, err := s.GetConferenceSponsors(ctx, p.(*GetConferenceSponsorsParams))
			return err
		}},
		{"UpdateSponsorContact", &UpdateSponsorContactParams{SponsorContactInformation: SponsorContactInformation{ID: 9, Role: ContactRoleTechnical}}, false, func(s *ServiceClient, p any) error {
			_, err := s.UpdateSponsorContact(ctx, p.(*UpdateSponsorContactParams))
			return err
		}},
		{"AddPaper", &AddPaperParams{Paper: Paper{Title: "Generics"}}, false, func(s *ServiceClient, p any) error {
			_, err := s.AddPaper(ctx, p.(*AddPaperParams))
			return err
		}},
		{"GetPaper", &GetPaperParams{PaperID: 4}, false, func(s *ServiceClient, p any) error {
			_, err := s.GetPaper(ctx, p.(*GetPaperParams))
			return err
		}},
		{"ListPapers", &ListPapersParams{ConferenceID: 4}, false, func(s *ServiceClient, p any) error {
			_, err := s.ListPapers(ctx, p.(*ListPapersParams))
			return err
		}},
		{"UpdatePaper", &UpdatePaperParams{Paper: Paper{ID: 4}}, false, func(s *ServiceClient, p any) error {
			_, err := s.UpdatePaper(ctx, p.(*UpdatePaperParams))
			return err
		}},
		{"DeletePaper", &DeletePaperParams{PaperID: 4}, true, func(s *ServiceClient, p any) error {
			return s.DeletePaper(ctx, p.(*DeletePaperParams))
		}},
		{"GetAnonPaper", &GetAnonPaperParams{PaperID: 4}, false, func(s *ServiceClient, p any) error {
			_, err := s.GetAnonPaper(ctx, p.(*GetAnonPaperParams))
			return err
		}},
		{"ListAnonPapers", &ListAnonPapersParams{ConferenceID: 4}, false, func(s *ServiceClient, p any) error {
			_, err := s.ListAnonPapers(ctx, p.(*ListAnonPapersParams))
			return err
		}},
		{"CreateJob", &CreateJobParams{Job: Job{Title: "SRE"}}, false, func(s *ServiceClient, p any) error {
			_, err := s.CreateJob(ctx, p.(*CreateJobParams))
			return err
		}},
		{"GetJob", &GetJobParams{JobID: 5}, false, func(s *ServiceClient, p any) error {
			_, err := s.GetJob(ctx, p.(*GetJobParams))
			return err
		}},
		{"ListJobs", nil, false, func(s *ServiceClient, _ any) error {
			_, err := s.ListJobs(ctx)
			return err
		}},
		{"ListApprovedJobs", nil, false, func(s *ServiceClient, _ any) error {
			_, err := s.ListApprovedJobs(ctx)
			return err
		}},
		{"UpdateJob", &UpdateJobParams{Job: Job{ID: 5}}, false, func(s *ServiceClient, p any) error {
			_, err := s.UpdateJob(ctx, p.(*UpdateJobParams))
			return err
		}},
		{"UpdateApproveJob", &UpdateApproveJobParams{JobID: 5, ApprovedStatus: true}, false, func(s *ServiceClient, p any) error {
			_, err := s.UpdateApproveJob(ctx, p.(*UpdateApproveJobParams))
			return err
		}},
		{"DeleteJob", &DeleteJobParams{JobID: 5}, true, func(s *ServiceClient, p any) error {
			return s.DeleteJob(ctx, p.(*DeleteJobParams))
		}},
		{"CreateDiscountVoucher", &CreateDiscountVoucherParams{VoucherInformation: &VoucherInformation{Percentage: 10}}, false, func(s *ServiceClient, p any) error {
			_, err := s.CreateDiscountVoucher(ctx, p.(*CreateDiscountVoucherParams))
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.rpc, func(t *testing.T) {
			caller := &fakeCaller{}
			if err := tc.invoke(NewServiceClient(caller), tc.params); err != nil {
				t.Fatalf("call: %v", err)
			}
			if caller.rpc != "conferences."+tc.rpc {
				t.Fatalf("rpc = %q", caller.rpc)
			}
			if caller.void != tc.void {
				t.Fatalf("void = %v, want %v", caller.void, tc.void)
			}
			if tc.params == nil {
				if caller.params != nil {
					t.Fatalf("expected nil params, got %#v", caller.params)
				}
				return
			}
			if caller.params != tc.params {
				t.Fatalf("params were not forwarded verbatim: %#v", caller.params)
			}
		})
	}
}

func TestServiceClientPropagatesErrors(t *testing.T) {
	boom := errors.New("request failed: nope")
	s := NewServiceClient(&fakeCaller{err: boom})

	resp, err := s.GetJob(context.Background(), &GetJobParams{JobID: 1})
	if !errors.Is(err, boom) || resp != nil {
		t.Fatalf("expected (nil, boom), got (%v, %v)", resp, err)
	}
	if err := s.DeleteJob(context.Background(), &DeleteJobParams{JobID: 1}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestServiceClientDecodesReply(t *testing.T) {
	caller := &fakeCaller{reply: `{"Jobs":[{"ID":1,"CompanyName":"Unicorn","Rank":3,"Approved":true}]}`}
	resp, err := NewServiceClient(caller).ListApprovedJobs(context.Background())
	if err != nil {
		t.Fatalf("ListApprovedJobs: %v", err)
	}
	want := &ListApprovedJobsResponse{Jobs: []Job{{ID: 1, CompanyName: "Unicorn", Rank: 3, Approved: true}}}
	if diff := cmp.Diff(want, resp); diff != "" {
		t.Fatalf("unexpected response (-want +got):\n%s", diff)
	}
}

func TestConferenceSlotOnSaleIsHalfOpen(t *testing.T) {
	from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	slot := ConferenceSlot{PurchaseableFrom: from, PurchaseableUntil: until}

	if slot.OnSale(from.Add(-time.Second)) {
		t.Fatalf("slot on sale before window")
	}
	if !slot.OnSale(from) {
		t.Fatalf("slot should be on sale at window start")
	}
	if slot.OnSale(until) {
		t.Fatalf("slot should not be on sale at window end")
	}
}

func TestEnumStrings(t *testing.T) {
	if ContactRoleSoleContact.String() != "sole_contact" {
		t.Fatalf("ContactRoleSoleContact = %q", ContactRoleSoleContact)
	}
	if ContactRole(42).String() != "unknown" {
		t.Fatalf("out of range role should be unknown")
	}
	if SponsorshipLevelGold.String() != "gold" {
		t.Fatalf("SponsorshipLevelGold = %q", SponsorshipLevelGold)
	}
	if SponsorshipLevel(-1).String() != "unknown" {
		t.Fatalf("negative level should be unknown")
	}
}

func TestCreateDiscountVoucherParamsCanOmitVoucher(t *testing.T) {
	raw, err := json.Marshal(CreateDiscountVoucherParams{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"VoucherInformation":null}` {
		t.Fatalf("absent voucher encoded as %s", raw)
	}

	var decoded CreateDiscountVoucherParams
	if err := json.Unmarshal([]byte(`{"VoucherInformation":{"Percentage":10}}`), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.VoucherInformation == nil || decoded.VoucherInformation.Percentage != 10 {
		t.Fatalf("voucher not decoded: %+v", decoded.VoucherInformation)
	}
}
