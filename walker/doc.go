// Package walker provides cycle-safe traversal of document graphs.
//
// A [Walker] visits every element reachable from a root, depth first and
// pre-order, in a fixed per-kind child order, calling a [Visitor] for each.
// While walking it maintains the document pointer of the current element,
// available from [WalkContext.Path]:
//
//	walker.Walk(doc, walker.Funcs{
//	    OnElement: func(wc *walker.WalkContext, el dom.Element) walker.Action {
//	        if s, ok := el.(*dom.Schema); ok {
//	            fmt.Println(wc.Path(), s.Type)
//	        }
//	        return walker.Continue
//	    },
//	})
//
// # Flow Control
//
// Visitors return an [Action] to control traversal:
//
//   - [Continue]: continue traversing children and siblings normally
//   - [SkipChildren]: skip all children of the current node, continue with siblings
//   - [Stop]: stop the entire walk immediately
//
// # References
//
// A shared element is visited once per call site, but its interior is walked
// only once per document. When the element at a call site carries a
// reference and the call site is not the components entry that reference
// names, the walker calls [Visitor.VisitReference] and does not descend.
// Unresolved placeholders are always reported through VisitReference.
//
// # Cycles
//
// Schemas, and path items reached through callbacks, may form cycles. The
// walker keeps the set of such elements currently on the stack and skips an
// element that is already being walked, so every walk terminates.
//
// # Post-Visit
//
// Visitors that also implement [PostVisitor] are called after an element's
// children have been walked, enabling bottom-up processing.
//
// # Collectors
//
// [CollectSchemas], [CollectOperations] and [CollectReferences] walk a
// document and return the elements of one kind with their pointers.
package walker
