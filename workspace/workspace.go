package workspace

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"reflect"
	"sort"
	"strings"

	"github.com/go-openapi/jsonpointer"
	"golang.org/x/text/unicode/norm"

	"github.com/erraggy/asynctools/aserrors"
	"github.com/erraggy/asynctools/dom"
	"github.com/erraggy/asynctools/parser"
)

// Workspace is a registry of documents and fragments keyed by normalized
// location.
type Workspace struct {
	documents map[string]*dom.Document
	fragments map[string]dom.Element
	logger    parser.Logger
}

var _ parser.ReferenceSource = (*Workspace)(nil)

// Option configures a Workspace.
type Option func(*Workspace)

// WithLogger sets the logger for registration and lookup diagnostics.
func WithLogger(l parser.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.logger = l
		}
	}
}

// New creates an empty Workspace.
func New(opts ...Option) *Workspace {
	w := &Workspace{
		documents: make(map[string]*dom.Document),
		fragments: make(map[string]dom.Element),
		logger:    parser.NopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NormalizeKey returns the canonical spelling of a location key.
func NormalizeKey(key string) string {
	key = norm.NFC.String(strings.TrimSpace(key))
	key = strings.ReplaceAll(key, `\`, "/")
	if key == "" {
		return ""
	}
	if u, err := url.Parse(key); err == nil && u.Scheme != "" && u.Host != "" {
		u.Fragment = ""
		u.RawFragment = ""
		if u.Path != "" {
			u.Path = path.Clean(u.Path)
			u.RawPath = ""
		}
		return u.String()
	}
	return path.Clean(key)
}

// AddDocument registers doc under key, replacing anything registered there.
func (w *Workspace) AddDocument(key string, doc *dom.Document) error {
	if doc == nil {
		return &aserrors.ConfigError{Option: "document", Message: "document cannot be nil"}
	}
	k, err := w.register(key)
	if err != nil {
		return err
	}
	w.documents[k] = doc
	return nil
}

// AddFragment registers a bare element under key, replacing anything
// registered there.
func (w *Workspace) AddFragment(key string, el dom.Element) error {
	if el == nil || reflect.ValueOf(el).IsNil() {
		return &aserrors.ConfigError{Option: "fragment", Message: "fragment cannot be nil"}
	}
	k, err := w.register(key)
	if err != nil {
		return err
	}
	w.fragments[k] = el
	return nil
}

// register normalizes key and frees its slot.
func (w *Workspace) register(key string) (string, error) {
	k := NormalizeKey(key)
	if k == "" {
		return "", &aserrors.ConfigError{Option: "key", Value: key, Message: "key cannot be empty"}
	}
	if w.Contains(k) {
		w.logger.Debug("workspace entry replaced", "key", k)
	}
	delete(w.documents, k)
	delete(w.fragments, k)
	return k, nil
}

// Contains reports whether anything is registered under key.
func (w *Workspace) Contains(key string) bool {
	k := NormalizeKey(key)
	_, isDoc := w.documents[k]
	_, isFrag := w.fragments[k]
	return isDoc || isFrag
}

// Document returns the document registered under key.
func (w *Workspace) Document(key string) (*dom.Document, bool) {
	doc, ok := w.documents[NormalizeKey(key)]
	return doc, ok
}

// Fragment returns the fragment registered under key.
func (w *Workspace) Fragment(key string) (dom.Element, bool) {
	el, ok := w.fragments[NormalizeKey(key)]
	return el, ok
}

// Keys returns every registered key in sorted order.
func (w *Workspace) Keys() []string {
	keys := make([]string, 0, len(w.documents)+len(w.fragments))
	for k := range w.documents {
		keys = append(keys, k)
	}
	for k := range w.fragments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ResolveReference returns the element an external reference targets.
//
// References into a document resolve against its components, or its root
// tags and security schemes. References into a fragment return the fragment
// itself when the reference has no ID, and otherwise follow the ID as a
// single field or map key below the fragment root.
func (w *Workspace) ResolveReference(ref *dom.Reference) (dom.Element, error) {
	if ref == nil {
		return nil, &aserrors.ReferenceError{RefType: aserrors.RefTypeWorkspace, Message: "reference is nil"}
	}
	key := NormalizeKey(ref.ExternalResource)
	if key == "" {
		return nil, w.fail(ref, aserrors.RefTypeWorkspace, "reference names no external resource")
	}

	if doc, ok := w.documents[key]; ok {
		if strings.HasPrefix(ref.ID, "/") {
			return w.hop(ref, doc)
		}
		target, err := doc.ResolveReference(&dom.Reference{Type: ref.Type, ID: ref.ID})
		if err != nil {
			return nil, w.wrap(ref, err)
		}
		return target, nil
	}

	if frag, ok := w.fragments[key]; ok {
		if ref.ID == "" {
			return frag, nil
		}
		if c, ok := frag.(*dom.Components); ok && !strings.HasPrefix(ref.ID, "/") {
			target, err := (&dom.Document{Components: c}).ResolveReference(&dom.Reference{Type: ref.Type, ID: ref.ID})
			if err != nil {
				return nil, w.wrap(ref, err)
			}
			return target, nil
		}
		return w.hop(ref, frag)
	}

	return nil, w.fail(ref, aserrors.RefTypeWorkspace, fmt.Sprintf("nothing registered at %q", key))
}

// hop follows a single pointer token from root.
func (w *Workspace) hop(ref *dom.Reference, root any) (dom.Element, error) {
	tokens := strings.Split(strings.TrimPrefix(ref.ID, "/"), "/")
	if len(tokens) != 1 {
		return nil, w.fail(ref, aserrors.RefTypeFragment,
			fmt.Sprintf("nested pointers are unsupported: %q has %d segments", ref.ID, len(tokens)))
	}
	token := jsonpointer.Unescape(tokens[0])

	rv := reflect.Indirect(reflect.ValueOf(root))
	if rv.Kind() == reflect.Map && rv.Type().Key() != reflect.TypeOf(token) {
		return nil, w.fail(ref, aserrors.RefTypeFragment, fmt.Sprintf("no such property %q", token))
	}
	v, _, err := jsonpointer.GetForToken(root, token)
	if err != nil {
		return nil, &aserrors.ReferenceError{
			Ref:        ref.String(),
			RefType:    aserrors.RefTypeFragment,
			IsExternal: true,
			Message:    fmt.Sprintf("no such property %q", token),
			Cause:      err,
		}
	}
	el, ok := v.(dom.Element)
	if !ok || reflect.ValueOf(el).IsNil() {
		return nil, w.fail(ref, aserrors.RefTypeFragment, fmt.Sprintf("property %q is not an element", token))
	}
	return el, nil
}

func (w *Workspace) fail(ref *dom.Reference, refType, msg string) error {
	w.logger.Debug("workspace lookup failed", "ref", ref.String(), "error", msg)
	return &aserrors.ReferenceError{
		Ref:        ref.String(),
		RefType:    refType,
		IsExternal: true,
		Message:    msg,
	}
}

// wrap restates a document lookup failure as a workspace failure.
func (w *Workspace) wrap(ref *dom.Reference, err error) error {
	msg := err.Error()
	var re *aserrors.ReferenceError
	if errors.As(err, &re) {
		msg = re.Message
	}
	return w.fail(ref, aserrors.RefTypeWorkspace, msg)
}

// ResolveAll resolves the references of every registered document against
// the workspace. Failures are keyed by document key; documents without
// failures are absent.
func (w *Workspace) ResolveAll(opts ...parser.ResolverOption) map[string][]error {
	out := make(map[string][]error)
	opts = append([]parser.ResolverOption{
		parser.WithWorkspace(w),
		parser.WithResolverLogger(w.logger),
	}, opts...)
	for _, key := range w.Keys() {
		doc, ok := w.documents[key]
		if !ok {
			continue
		}
		if errs := parser.ResolveReferences(doc, opts...); len(errs) > 0 {
			out[key] = errs
		}
	}
	return out
}
