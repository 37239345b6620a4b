package common

import (
	"time"

	iso "github.com/reoring/iso20022"
	"github.com/reoring/iso20022/codec"
)

var (
	isoDate     = iso.NewTextType("ISODate", iso.Lexical("date", codec.CheckISODate))
	isoDateTime = iso.NewTextType("ISODateTime", iso.Lexical("date-time", codec.CheckISODateTime))
	isoTime     = iso.NewTextType("ISOTime", iso.Lexical("time", codec.CheckISOTime))
	isoYear     = iso.NewTextType("ISOYear", iso.Lexical("year", codec.CheckISOYear))
)

// ISODate is an xs:date kept in its lexical form, e.g. "2024-05-01".
type ISODate string

func (v ISODate) Validate(p iso.PathRef) error { return isoDate.Check(p, string(v)) }
func (ISODate) SimpleType() iso.SimpleType     { return isoDate }

// Time parses the date.
func (v ISODate) Time() (time.Time, error) { return codec.ParseISODate(string(v)) }

// NewISODate formats t as an ISODate.
func NewISODate(t time.Time) ISODate { return ISODate(codec.FormatISODate(t)) }

// ISODateTime is an xs:dateTime with or without a zone offset.
type ISODateTime string

func (v ISODateTime) Validate(p iso.PathRef) error { return isoDateTime.Check(p, string(v)) }
func (ISODateTime) SimpleType() iso.SimpleType     { return isoDateTime }

// Time parses the timestamp; a missing offset is read as UTC.
func (v ISODateTime) Time() (time.Time, error) { return codec.ParseISODateTime(string(v)) }

// NewISODateTime formats t as an ISODateTime.
func NewISODateTime(t time.Time) ISODateTime { return ISODateTime(codec.FormatISODateTime(t)) }

type ISOTime string

func (v ISOTime) Validate(p iso.PathRef) error { return isoTime.Check(p, string(v)) }
func (ISOTime) SimpleType() iso.SimpleType     { return isoTime }

type ISOYear string

func (v ISOYear) Validate(p iso.PathRef) error { return isoYear.Check(p, string(v)) }
func (ISOYear) SimpleType() iso.SimpleType     { return isoYear }
