package terminology

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"charityd/internal/domain"
)

type fakeSource struct {
	terms *domain.Terminology
	err   error
	calls int
}

func (f *fakeSource) Terminology(context.Context, uuid.UUID) (*domain.Terminology, error) {
	f.calls++
	return f.terms, f.err
}

var orgID = uuid.MustParse("11111111-1111-1111-1111-111111111111")

func TestGetReturnsTenantTerminology(t *testing.T) {
	custom := &domain.Terminology{
		OrgSingular:    "приют",
		OrgGenitive:    "приюта",
		ActionSupport:  "помочь",
		MemberSingular: "попечитель",
		MemberPlural:   "попечители",
	}
	p := NewProvider(&fakeSource{terms: custom}, zerolog.Nop())

	got := p.Get(context.Background(), orgID)
	if got != *custom {
		t.Fatalf("Get = %+v, want %+v", got, *custom)
	}
}

func TestGetFallsBackOnError(t *testing.T) {
	src := &fakeSource{err: errors.New("unavailable")}
	p := NewProvider(src, zerolog.Nop())

	got := p.Get(context.Background(), orgID)
	if got != Fallback {
		t.Fatalf("Get = %+v, want fallback", got)
	}
	if src.calls != 1 {
		t.Fatalf("source consulted %d times, want 1", src.calls)
	}
}

func TestGetFallsBackOnNilResult(t *testing.T) {
	p := NewProvider(&fakeSource{}, zerolog.Nop())
	if got := p.Get(context.Background(), orgID); got != Fallback {
		t.Fatalf("Get = %+v, want fallback", got)
	}
}

func TestGetFallsBackWithoutSource(t *testing.T) {
	p := NewProvider(nil, zerolog.Nop())
	if got := p.Get(context.Background(), orgID); got != Fallback {
		t.Fatalf("Get = %+v, want fallback", got)
	}
}
