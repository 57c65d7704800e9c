package domain

import (
	"context"
	"strings"
	"time"
)

// Posting kinds. A posting with neither kind is a plain feed item and is
// ignored by the job recommendation path.
const (
	PostingKindJob        = "job"
	PostingKindInternship = "internship"
)

// Legacy tag prefixes. The original frontend stored structured posting
// attributes inside the generic tags array using a "key:value" convention.
// We keep proper columns and only speak the legacy encoding at the storage
// boundary, for rows written by the old client.
const (
	tagPrefixCompany  = "company:"
	tagPrefixLocation = "location:"
	tagPrefixLink     = "link:"
)

// Posting is a job or internship opening published on the board.
type Posting struct {
	ID          int64     `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title" validate:"required,min=3,max=150"`
	Content     string    `json:"content" validate:"required"`
	Kind        string    `json:"kind" validate:"omitempty,oneof=job internship"`
	Company     *string   `json:"company,omitempty"`
	Location    *string   `json:"location,omitempty"`
	ContactLink *string   `json:"contact_link,omitempty"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DecodeTags fills the structured fields of p from a legacy raw tag list.
// The literal tags "job"/"internship" select the kind ("job" wins when both
// are present), "company:"/"location:"/"link:" prefixed tags carry the
// structured attributes (first occurrence wins), and everything else stays a
// free-form tag. Prefix matching is case-sensitive, as written by the legacy
// client.
func (p *Posting) DecodeTags(raw []string) {
	var hasJob, hasInternship bool
	p.Tags = nil
	for _, tag := range raw {
		switch {
		case tag == PostingKindJob:
			hasJob = true
		case tag == PostingKindInternship:
			hasInternship = true
		case strings.HasPrefix(tag, tagPrefixCompany):
			if p.Company == nil {
				v := tag[len(tagPrefixCompany):]
				p.Company = &v
			}
		case strings.HasPrefix(tag, tagPrefixLocation):
			if p.Location == nil {
				v := tag[len(tagPrefixLocation):]
				p.Location = &v
			}
		case strings.HasPrefix(tag, tagPrefixLink):
			if p.ContactLink == nil {
				v := tag[len(tagPrefixLink):]
				p.ContactLink = &v
			}
		default:
			p.Tags = append(p.Tags, tag)
		}
	}
	if hasJob {
		p.Kind = PostingKindJob
	} else if hasInternship {
		p.Kind = PostingKindInternship
	}
}

// EncodeTags renders the structured fields back into the legacy tag list so
// rows stay readable by the old client.
func (p *Posting) EncodeTags() []string {
	var raw []string
	if p.Kind != "" {
		raw = append(raw, p.Kind)
	}
	if p.Company != nil {
		raw = append(raw, tagPrefixCompany+*p.Company)
	}
	if p.Location != nil {
		raw = append(raw, tagPrefixLocation+*p.Location)
	}
	if p.ContactLink != nil {
		raw = append(raw, tagPrefixLink+*p.ContactLink)
	}
	return append(raw, p.Tags...)
}

type PostingRepository interface {
	// FetchRecent returns all postings ordered by creation time descending.
	FetchRecent(ctx context.Context) ([]Posting, error)
	GetByID(ctx context.Context, id int64) (*Posting, error)
	Fetch(ctx context.Context, limit, offset int) ([]Posting, int64, error)
	Create(ctx context.Context, posting *Posting) error
	Update(ctx context.Context, posting *Posting) error
	Delete(ctx context.Context, id int64) error
}

type PostingUsecase interface {
	CreatePosting(ctx context.Context, posting *Posting) error
	GetPostingDetails(ctx context.Context, id int64) (*Posting, error)
	ListPostings(ctx context.Context, page, pageSize int) ([]Posting, int64, error)
	UpdatePosting(ctx context.Context, posting *Posting) error
	DeletePosting(ctx context.Context, id int64) error
}
