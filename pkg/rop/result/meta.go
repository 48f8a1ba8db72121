package result

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/fallible/pkg/rop"
)

// meta is the part of a result that is not compared: side channel, id and
// creation time.
type meta struct {
	data      rop.Data
	id        uuid.UUID
	createdAt time.Time
}

func newMeta() meta {
	return meta{
		data:      rop.NewData(),
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func adoptedMeta(src rop.Carrier) meta {
	m := newMeta()
	m.data.Adopt(src.Data())
	return m
}

// adopt copies src's side channel into m, allocating one when m has none.
func (m meta) adopt(src rop.Carrier) meta {
	if m.data == nil {
		m.data = rop.NewData()
	}
	m.data.Adopt(src.Data())
	return m
}

// Data returns the side channel. A zero-value result has a nil Data that can
// be read but not written to; AdoptData gives it one.
func (m meta) Data() rop.Data {
	return m.data
}

func (m meta) Id() uuid.UUID {
	return m.id
}

// CreatedAt time creation (UTC)
func (m meta) CreatedAt() time.Time {
	return m.createdAt
}
