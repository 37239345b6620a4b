// Package rules builds cross-field business rules over decoded messages.
// Rules run after structural validation and address fields by JSON Pointer
// using XML element names, for example "/GrpHdr/NbOfTxs". A "*" segment
// fans out over every element of a repeated field.
package rules

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/currency"

	iso "github.com/reoring/iso20022"
)

// Op defines simple comparison operators for If(...).Then(...)
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// Rule is a typed rule function. It reports every issue it finds.
type Rule[T any] = func(iso.DomainCtx[T], T) []iso.Issue

// Run evaluates rules against v with issue paths rooted at ref. Under
// fail-fast it stops after the first rule that reports.
func Run[T any](ctx context.Context, ref iso.PathRef, v T, rules ...Rule[T]) error {
	iss := And(rules...)(iso.DomainCtx[T]{Ctx: ctx, Ref: ref}, v)
	if len(iss) == 0 {
		return nil
	}
	return iso.Issues(iss)
}

// Conditional composes conditional execution of rules.
type Conditional[T any] struct {
	path string
	op   Op
	want any
	all  []Conditional[T] // composite AND
	any  []Conditional[T] // composite OR
}

// If builds a conditional that evaluates a path against a value using an
// operator. A path that does not resolve makes the condition false.
func If[T any](path string, op Op, want any) Conditional[T] {
	return Conditional[T]{path: normalizePath(path), op: op, want: want}
}

// IfAll builds a conditional that requires all conditions to hold.
func IfAll[T any](conds ...Conditional[T]) Conditional[T] { return Conditional[T]{all: conds} }

// IfAny builds a conditional that requires any condition to hold.
func IfAny[T any](conds ...Conditional[T]) Conditional[T] { return Conditional[T]{any: conds} }

// And combines the receiver with additional conditions using logical AND.
func (c Conditional[T]) And(others ...Conditional[T]) Conditional[T] {
	conds := append([]Conditional[T]{c}, others...)
	return IfAll(conds...)
}

// Or combines the receiver with additional conditions using logical OR.
func (c Conditional[T]) Or(others ...Conditional[T]) Conditional[T] {
	conds := append([]Conditional[T]{c}, others...)
	return IfAny(conds...)
}

// Then attaches rules to run when the condition is satisfied.
func (c Conditional[T]) Then(rules ...Rule[T]) Rule[T] {
	inner := And(rules...)
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		if !evalConditional(v, c) {
			return nil
		}
		return inner(d, v)
	}
}

// And executes all rules and concatenates their issues, stopping early
// under fail-fast.
func And[T any](rules ...Rule[T]) Rule[T] {
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		var out []iso.Issue
		for _, r := range rules {
			if r == nil {
				continue
			}
			if iss := r(d, v); len(iss) > 0 {
				out = append(out, iss...)
				if d.Ctx != nil && iso.IsFailFast(d.Ctx) {
					return out
				}
			}
		}
		return out
	}
}

// Or succeeds if any rule returns no issues. When every branch fails the
// branch with the fewest issues is reported.
func Or[T any](rules ...Rule[T]) Rule[T] {
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		var best []iso.Issue
		bestSet := false
		for _, r := range rules {
			if r == nil {
				continue
			}
			iss := r(d, v)
			if len(iss) == 0 {
				return nil
			}
			if !bestSet || len(iss) < len(best) {
				best = iss
				bestSet = true
			}
		}
		return best
	}
}

// AtLeastOne ensures the collection at collectionPath has at least 1 element.
func AtLeastOne[T any](collectionPath string) Rule[T] {
	p := normalizePath(collectionPath)
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		n, ok := lengthAt(v, p)
		if ok && n == 0 {
			return []iso.Issue{iso.ViolationIssue(at(d.Ref, p), iso.CodeTooFew, "AtLeastOne", map[string]any{"min": 1, "got": 0})}
		}
		return nil
	}
}

// UniqueBy ensures elements in a collection have unique key values.
// keyPath is relative to each element, for example "PmtId/TxId". Elements
// without the key are skipped.
func UniqueBy[T any](collectionPath, keyPath string) Rule[T] {
	cp := normalizePath(collectionPath)
	kp := strings.TrimPrefix(keyPath, "/")
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		val, ok := valueAtPath(v, cp)
		if !ok {
			return nil
		}
		rv := reflect.ValueOf(val)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return nil
		}
		seen := map[string]int{}
		var out []iso.Issue
		for i := 0; i < rv.Len(); i++ {
			kv, ok := valueAtPathWithin(rv.Index(i).Interface(), kp)
			if !ok {
				continue
			}
			key := textOf(kv)
			if j, dup := seen[key]; dup {
				out = append(out, iso.ViolationIssue(
					at(at(d.Ref, cp).Index(i), "/"+kp),
					iso.CodeUniqueness, "UniqueBy",
					map[string]any{"first": j, "dup": i, "key": key},
				))
			} else {
				seen[key] = i
			}
		}
		return out
	}
}

// Equals requires the value at path to equal want. Simple types compare by
// their lexical form. A missing value is reported as well, unless the path
// fans out through "*".
func Equals[T any](path string, want any) Rule[T] {
	p := normalizePath(path)
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		hits := valuesAtPath(v, p)
		if len(hits) == 0 && !strings.Contains(p, "*") {
			return []iso.Issue{iso.ViolationIssue(at(d.Ref, p), iso.CodeBusinessRule, "Equals", map[string]any{"want": textOf(want), "got": ""})}
		}
		var out []iso.Issue
		for _, h := range hits {
			if !compare(h.val, Eq, want) {
				out = append(out, iso.ViolationIssue(at(d.Ref, h.ptr), iso.CodeBusinessRule, "Equals", map[string]any{"want": textOf(want), "got": textOf(h.val)}))
			}
		}
		return out
	}
}

// Present requires every value matched by path to exist.
func Present[T any](path string) Rule[T] {
	p := normalizePath(path)
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		if strings.Contains(p, "/*") {
			return presentEach(d, v, p)
		}
		if _, ok := valueAtPath(v, p); !ok {
			return []iso.Issue{iso.ViolationIssue(at(d.Ref, p), iso.CodeBusinessRule, "Present", nil)}
		}
		return nil
	}
}

// presentEach checks the part after the last wildcard in every element the
// wildcard matches.
func presentEach[T any](d iso.DomainCtx[T], v T, p string) []iso.Issue {
	i := strings.LastIndex(p, "/*")
	coll, rest := p[:i], strings.TrimPrefix(p[i+2:], "/")
	var out []iso.Issue
	for _, h := range valuesAtPath(v, coll) {
		rv := reflect.ValueOf(h.val)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			continue
		}
		for j := 0; j < rv.Len(); j++ {
			if _, ok := valueAtPathWithin(rv.Index(j).Interface(), rest); !ok {
				out = append(out, iso.ViolationIssue(at(at(d.Ref, h.ptr).Index(j), "/"+rest), iso.CodeBusinessRule, "Present", nil))
			}
		}
	}
	return out
}

// CountEquals requires the number in the text field at countPath (NbOfTxs)
// to equal the length of the collection.
func CountEquals[T any](countPath, collectionPath string) Rule[T] {
	cp := normalizePath(countPath)
	lp := normalizePath(collectionPath)
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		raw, ok := valueAtPath(v, cp)
		if !ok {
			return nil
		}
		n, _ := lengthAt(v, lp)
		declared, err := strconv.Atoi(textOf(raw))
		if err != nil || declared != n {
			return []iso.Issue{iso.ViolationIssue(at(d.Ref, cp), iso.CodeAggregateViolation, "CountEquals", map[string]any{"want": n, "got": textOf(raw)})}
		}
		return nil
	}
}

// SumEquals requires the decimal at totalPath (CtrlSum, TtlIntrBkSttlmAmt)
// to equal the sum of amountPath over every element of the collection. An
// absent total is not checked.
func SumEquals[T any](totalPath, collectionPath, amountPath string) Rule[T] {
	tp := normalizePath(totalPath)
	items := normalizePath(collectionPath) + "/*/" + strings.TrimPrefix(amountPath, "/")
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		raw, ok := valueAtPath(v, tp)
		if !ok {
			return nil
		}
		total, ok := decimalOf(raw)
		if !ok {
			return nil
		}
		sum := iso.NewDecimal(0, 0)
		for _, h := range valuesAtPath(v, items) {
			x, ok := decimalOf(h.val)
			if !ok {
				continue
			}
			var err error
			if sum, err = sum.Add(x); err != nil {
				return []iso.Issue{iso.ViolationIssue(at(d.Ref, h.ptr), iso.CodeAggregateViolation, "SumEquals", map[string]any{"error": err.Error()})}
			}
		}
		if sum.Cmp(total) != 0 {
			return []iso.Issue{iso.ViolationIssue(at(d.Ref, tp), iso.CodeAggregateViolation, "SumEquals", map[string]any{"want": sum.String(), "got": total.String()})}
		}
		return nil
	}
}

// CurrencyPrecision requires every amount matched by the paths to use no
// more fraction digits than the ISO 4217 minor unit of its currency. Amounts
// in currencies unknown to the registry are skipped.
func CurrencyPrecision[T any](amountPaths ...string) Rule[T] {
	paths := make([]string, len(amountPaths))
	for i, p := range amountPaths {
		paths[i] = normalizePath(p)
	}
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		var out []iso.Issue
		for _, p := range paths {
			for _, h := range valuesAtPath(v, p) {
				amt, ok := h.val.(interface {
					Currency() string
					Amount() iso.Decimal
				})
				if !ok {
					continue
				}
				unit, err := currency.ParseISO(amt.Currency())
				if err != nil {
					continue
				}
				scale, _ := currency.Standard.Rounding(unit)
				if got := amt.Amount().FractionDigits(); got > scale {
					out = append(out, iso.ViolationIssue(at(d.Ref, h.ptr), iso.CodeDigits, "CurrencyPrecision", map[string]any{"currency": amt.Currency(), "max": scale, "got": got}))
				}
			}
		}
		return out
	}
}

// SameValue requires every value matched by path to share one lexical form,
// for example one currency across all transactions.
func SameValue[T any](path string) Rule[T] {
	p := normalizePath(path)
	return func(d iso.DomainCtx[T], v T) []iso.Issue {
		hits := valuesAtPath(v, p)
		if len(hits) < 2 {
			return nil
		}
		first := textOf(hits[0].val)
		var out []iso.Issue
		for _, h := range hits[1:] {
			if got := textOf(h.val); got != first {
				out = append(out, iso.ViolationIssue(at(d.Ref, h.ptr), iso.CodeBusinessRule, "SameValue", map[string]any{"want": first, "got": got}))
			}
		}
		return out
	}
}

// ------- helpers -------

func normalizePath(p string) string {
	if p == "" || p == "/" {
		return "/"
	}
	if p[0] != '/' {
		return "/" + p
	}
	return p
}

// at extends ref by the segments of a JSON Pointer.
func at(ref iso.PathRef, pointer string) iso.PathRef {
	for _, seg := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		if seg != "" {
			ref = ref.Field(seg)
		}
	}
	return ref
}

func evalConditional[T any](v T, c Conditional[T]) bool {
	if len(c.all) > 0 {
		for _, it := range c.all {
			if !evalConditional(v, it) {
				return false
			}
		}
		return true
	}
	if len(c.any) > 0 {
		for _, it := range c.any {
			if evalConditional(v, it) {
				return true
			}
		}
		return false
	}
	cur, ok := valueAtPath(v, c.path)
	if !ok {
		return false
	}
	return compare(cur, c.op, c.want)
}

func lengthAt[T any](v T, p string) (int, bool) {
	val, ok := valueAtPath(v, p)
	if !ok {
		return 0, false
	}
	rv := reflect.ValueOf(val)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len(), true
	}
	return 0, false
}

// hit is one value matched by a wildcard path, with its concrete pointer.
type hit struct {
	ptr string
	val any
}

// valuesAtPath resolves a pointer that may contain "*" segments.
func valuesAtPath(v any, pointer string) []hit {
	var out []hit
	collect(reflect.ValueOf(v), splitPointer(pointer), "", &out)
	return out
}

func collect(cur reflect.Value, parts []string, prefix string, out *[]hit) {
	cur, ok := deref(cur)
	if !ok {
		return
	}
	if len(parts) == 0 {
		*out = append(*out, hit{ptr: prefix, val: cur.Interface()})
		return
	}
	seg := parts[0]
	if seg == "*" {
		if cur.Kind() != reflect.Slice && cur.Kind() != reflect.Array {
			return
		}
		for i := 0; i < cur.Len(); i++ {
			collect(cur.Index(i), parts[1:], prefix+"/"+strconv.Itoa(i), out)
		}
		return
	}
	next, ok := step(cur, seg)
	if !ok {
		return
	}
	collect(next, parts[1:], prefix+"/"+seg, out)
}

// valueAtPath navigates v by JSON Pointer using XML element names.
func valueAtPath[T any](v T, pointer string) (any, bool) {
	return valueAtPathWithin(v, strings.TrimPrefix(pointer, "/"))
}

func valueAtPathWithin(v any, rel string) (any, bool) {
	cur := reflect.ValueOf(v)
	for _, seg := range splitPointer(rel) {
		var ok bool
		if cur, ok = deref(cur); !ok {
			return nil, false
		}
		if cur, ok = step(cur, seg); !ok {
			return nil, false
		}
	}
	cur, ok := deref(cur)
	if !ok {
		return nil, false
	}
	return cur.Interface(), true
}

func splitPointer(p string) []string {
	var parts []string
	for _, seg := range strings.Split(strings.TrimPrefix(p, "/"), "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}
	return parts
}

// deref follows pointers and interfaces; a nil one means the value is absent.
func deref(cur reflect.Value) (reflect.Value, bool) {
	for cur.IsValid() && (cur.Kind() == reflect.Pointer || cur.Kind() == reflect.Interface) {
		if cur.IsNil() {
			return reflect.Value{}, false
		}
		cur = cur.Elem()
	}
	return cur, cur.IsValid()
}

func step(cur reflect.Value, seg string) (reflect.Value, bool) {
	switch cur.Kind() {
	case reflect.Struct:
		rt := cur.Type()
		for i := 0; i < rt.NumField(); i++ {
			sf := rt.Field(i)
			if sf.IsExported() && iso.ResolveStructKey(sf) == seg {
				return cur.Field(i), true
			}
		}
	case reflect.Map:
		mv := cur.MapIndex(reflect.ValueOf(seg))
		return mv, mv.IsValid()
	case reflect.Slice, reflect.Array:
		idx, err := strconv.Atoi(seg)
		if err != nil || idx < 0 || idx >= cur.Len() {
			return reflect.Value{}, false
		}
		return cur.Index(idx), true
	}
	return reflect.Value{}, false
}

// textOf returns the lexical form of a simple value.
func textOf(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	if d, ok := decimalOf(v); ok {
		return d.String()
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return fmt.Sprint(v)
}

func decimalOf(v any) (iso.Decimal, bool) {
	switch x := v.(type) {
	case iso.Decimal:
		return x, true
	case interface{ Decimal() iso.Decimal }:
		return x.Decimal(), true
	case interface{ Amount() iso.Decimal }:
		return x.Amount(), true
	}
	return iso.Decimal{}, false
}

func compare(cur any, op Op, want any) bool {
	switch op {
	case Eq:
		return equal(cur, want)
	case Ne:
		return !equal(cur, want)
	case Lt, Le, Gt, Ge:
		return compareOrdered(cur, op, want)
	default:
		return false
	}
}

// equal treats named string types and their plain string form as equal, so
// If("/SttlmMtd", Eq, "CLRG") matches a SettlementMethod1Code.
func equal(cur, want any) bool {
	if reflect.DeepEqual(cur, want) {
		return true
	}
	ck, wk := reflect.ValueOf(cur).Kind(), reflect.ValueOf(want).Kind()
	if ck == reflect.String && wk == reflect.String {
		return reflect.ValueOf(cur).String() == reflect.ValueOf(want).String()
	}
	if a, ok := decimalOf(cur); ok {
		if b, ok := decimalOf(want); ok {
			return a.Cmp(b) == 0
		}
	}
	return false
}

func compareOrdered(cur any, op Op, want any) bool {
	if a, ok := decimalOf(cur); ok {
		if b, ok := decimalOf(want); ok {
			return ordered(a.Cmp(b), op)
		}
		return false
	}
	c := reflect.ValueOf(cur)
	w := reflect.ValueOf(want)
	if isIntLike(c.Kind()) && isIntLike(w.Kind()) {
		a, b := toInt64(c), toInt64(w)
		switch {
		case a < b:
			return ordered(-1, op)
		case a > b:
			return ordered(1, op)
		}
		return ordered(0, op)
	}
	if isFloatLike(c.Kind()) && isFloatLike(w.Kind()) {
		a, b := c.Float(), w.Float()
		switch {
		case a < b:
			return ordered(-1, op)
		case a > b:
			return ordered(1, op)
		}
		return ordered(0, op)
	}
	return false
}

func ordered(cmp int, op Op) bool {
	switch op {
	case Lt:
		return cmp < 0
	case Le:
		return cmp <= 0
	case Gt:
		return cmp > 0
	case Ge:
		return cmp >= 0
	}
	return false
}

func isIntLike(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	default:
		return false
	}
}

func isFloatLike(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}

func toInt64(v reflect.Value) int64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(v.Uint())
	default:
		return 0
	}
}
