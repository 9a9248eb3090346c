package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/showrunner-hq/showrunner-client/pkg/conferences"
)

// RPC describes one invokable backend method.
type RPC struct {
	Name        string
	Description string
	// Void RPCs produce no output on success.
	Void bool
	// TakesParams is false for RPCs the backend declares without input.
	TakesParams bool

	newParams func() any
	invoke    func(ctx context.Context, svc *conferences.ServiceClient, params any) (any, error)
}

// FullName is the wire name, e.g. "conferences.GetAll".
func (r RPC) FullName() string { return conferences.Namespace + "." + r.Name }

// NewParams returns a pointer to a zero params value, or nil for RPCs without input.
func (r RPC) NewParams() any {
	if r.newParams == nil {
		return nil
	}
	return r.newParams()
}

func withParams[P, R any](name, desc string, fn func(*conferences.ServiceClient, context.Context, *P) (*R, error)) RPC {
	return RPC{
		Name:        name,
		Description: desc,
		TakesParams: true,
		newParams:   func() any { return new(P) },
		invoke: func(ctx context.Context, svc *conferences.ServiceClient, params any) (any, error) {
			p, ok := params.(*P)
			if !ok {
				return nil, fmt.Errorf("%s: unexpected params type %T", name, params)
			}
			return fn(svc, ctx, p)
		},
	}
}

func withoutParams[R any](name, desc string, fn func(*conferences.ServiceClient, context.Context) (*R, error)) RPC {
	return RPC{
		Name:        name,
		Description: desc,
		invoke: func(ctx context.Context, svc *conferences.ServiceClient, _ any) (any, error) {
			return fn(svc, ctx)
		},
	}
}

func void[P any](name, desc string, fn func(*conferences.ServiceClient, context.Context, *P) error) RPC {
	return RPC{
		Name:        name,
		Description: desc,
		Void:        true,
		TakesParams: true,
		newParams:   func() any { return new(P) },
		invoke: func(ctx context.Context, svc *conferences.ServiceClient, params any) (any, error) {
			p, ok := params.(*P)
			if !ok {
				return nil, fmt.Errorf("%s: unexpected params type %T", name, params)
			}
			return nil, fn(svc, ctx, p)
		},
	}
}

type service = conferences.ServiceClient

var catalogue = []RPC{
	withParams("GetAll", "retrieve all events and their conferences", (*service).GetAll),
	withParams("GetConferenceSlots", "retrieve the slots of a conference", (*service).GetConferenceSlots),
	withParams("GetCurrentByEvent", "retrieve the current conference of an event", (*service).GetCurrentByEvent),
	withParams("GetConferenceSponsors", "retrieve the sponsors of a conference", (*service).GetConferenceSponsors),
	withParams("UpdateSponsorContact", "update a sponsor contact", (*service).UpdateSponsorContact),
	withParams("AddPaper", "submit a paper", (*service).AddPaper),
	withParams("GetPaper", "retrieve a paper", (*service).GetPaper),
	withParams("ListPapers", "list the papers of a conference", (*service).ListPapers),
	withParams("UpdatePaper", "update a paper", (*service).UpdatePaper),
	void("DeletePaper", "delete a paper", (*service).DeletePaper),
	withParams("GetAnonPaper", "retrieve a paper without submitter identity", (*service).GetAnonPaper),
	withParams("ListAnonPapers", "list papers without submitter identity", (*service).ListAnonPapers),
	withParams("CreateJob", "create a job posting", (*service).CreateJob),
	withParams("GetJob", "retrieve a job posting", (*service).GetJob),
	withoutParams("ListJobs", "list all job postings", (*service).ListJobs),
	withoutParams("ListApprovedJobs", "list approved job postings", (*service).ListApprovedJobs),
	withParams("UpdateJob", "update a job posting", (*service).UpdateJob),
	withParams("UpdateApproveJob", "approve or reject a job posting", (*service).UpdateApproveJob),
	void("DeleteJob", "delete a job posting", (*service).DeleteJob),
	withParams("CreateDiscountVoucher", "create a discount voucher", (*service).CreateDiscountVoucher),
}

// Catalogue returns every known RPC sorted by name.
func Catalogue() []RPC {
	out := make([]RPC, len(catalogue))
	copy(out, catalogue)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup finds an RPC by name. Matching ignores case, dashes, underscores and
// an optional "conferences." prefix, so "get-all" and "conferences.GetAll" both work.
func Lookup(name string) (RPC, bool) {
	key := normalize(strings.TrimPrefix(strings.TrimSpace(name), conferences.Namespace+"."))
	if key == "" {
		return RPC{}, false
	}
	for _, r := range catalogue {
		if normalize(r.Name) == key {
			return r, true
		}
	}
	return RPC{}, false
}

// KebabName renders "GetConferenceSlots" as "get-conference-slots".
func KebabName(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.NewReplacer("-", "", "_", "").Replace(s)
}
