package walker

import (
	"github.com/erraggy/asynctools/dom"
)

// SchemaInfo contains information about a collected schema.
type SchemaInfo struct {
	// Schema is the collected schema.
	Schema *dom.Schema

	// Name is the component name for component schemas, or the property
	// name for property schemas. Empty for other inline schemas.
	Name string

	// Path is the document pointer of the schema.
	Path string

	// IsComponent is true when the schema is a components entry.
	IsComponent bool
}

// SchemaCollector holds schemas collected during a walk.
type SchemaCollector struct {
	// All contains all schemas in traversal order.
	All []*SchemaInfo

	// Components contains only component schemas.
	Components []*SchemaInfo

	// Inline contains only schemas that are not components entries.
	Inline []*SchemaInfo

	// ByPath provides lookup by document pointer.
	ByPath map[string]*SchemaInfo

	// ByName provides lookup of component schemas by name.
	ByName map[string]*SchemaInfo
}

// CollectSchemas walks root and collects every schema whose interior is
// walked. Schemas reached through references are not repeated.
func CollectSchemas(root dom.Element) *SchemaCollector {
	collector := &SchemaCollector{
		All:        make([]*SchemaInfo, 0),
		Components: make([]*SchemaInfo, 0),
		Inline:     make([]*SchemaInfo, 0),
		ByPath:     make(map[string]*SchemaInfo),
		ByName:     make(map[string]*SchemaInfo),
	}

	Walk(root, Funcs{
		OnElement: func(wc *WalkContext, el dom.Element) Action {
			schema, ok := el.(*dom.Schema)
			if !ok {
				return Continue
			}
			info := &SchemaInfo{
				Schema:      schema,
				Name:        wc.Name,
				Path:        wc.Path(),
				IsComponent: wc.IsComponent,
			}

			collector.All = append(collector.All, info)
			collector.ByPath[info.Path] = info

			if wc.IsComponent {
				collector.Components = append(collector.Components, info)
				collector.ByName[wc.Name] = info
			} else {
				collector.Inline = append(collector.Inline, info)
			}
			return Continue
		},
	})

	return collector
}

// OperationInfo contains information about a collected operation.
type OperationInfo struct {
	// Operation is the collected operation.
	Operation *dom.Operation

	// Type is "publish"/"subscribe" for channel operations, or the HTTP
	// method for path item operations.
	Type string

	// Path is the document pointer of the operation.
	Path string
}

// OperationCollector holds operations collected during a walk.
type OperationCollector struct {
	// All contains all operations in traversal order.
	All []*OperationInfo

	// ByType groups operations by operation type.
	ByType map[string][]*OperationInfo

	// ByTag groups operations by tag name.
	// Operations with multiple tags appear in multiple groups.
	// Operations without tags are not included in this map.
	ByTag map[string][]*OperationInfo

	// ByID provides lookup by operation id. Operations without an id are
	// not included; if ids collide the last one wins.
	ByID map[string]*OperationInfo
}

// CollectOperations walks root and collects all operations.
func CollectOperations(root dom.Element) *OperationCollector {
	collector := &OperationCollector{
		All:    make([]*OperationInfo, 0),
		ByType: make(map[string][]*OperationInfo),
		ByTag:  make(map[string][]*OperationInfo),
		ByID:   make(map[string]*OperationInfo),
	}

	Walk(root, Funcs{
		OnElement: func(wc *WalkContext, el dom.Element) Action {
			op, ok := el.(*dom.Operation)
			if !ok {
				return Continue
			}
			info := &OperationInfo{
				Operation: op,
				Type:      wc.Name,
				Path:      wc.Path(),
			}

			collector.All = append(collector.All, info)
			collector.ByType[info.Type] = append(collector.ByType[info.Type], info)
			for _, tag := range op.Tags {
				if tag != nil && tag.Name != "" {
					collector.ByTag[tag.Name] = append(collector.ByTag[tag.Name], info)
				}
			}
			if op.OperationID != "" {
				collector.ByID[op.OperationID] = info
			}
			return Continue
		},
	})

	return collector
}

// RefInfo describes a reference encountered during a walk.
type RefInfo struct {
	// Element is the placeholder or shared target at the call site.
	Element dom.Referenceable

	// Ref is the rendered reference, e.g. "#/components/schemas/Pet".
	Ref string

	// SourcePath is the document pointer of the call site.
	SourcePath string

	// Unresolved is true when the element is still a placeholder.
	Unresolved bool
}

// CollectReferences walks root and returns every reference call site in
// traversal order.
func CollectReferences(root dom.Element) []*RefInfo {
	var refs []*RefInfo
	Walk(root, Funcs{
		OnReference: func(wc *WalkContext, ref dom.Referenceable) Action {
			refs = append(refs, &RefInfo{
				Element:    ref,
				Ref:        ref.GetReference().String(),
				SourcePath: wc.Path(),
				Unresolved: ref.IsUnresolved(),
			})
			return Continue
		},
	})
	return refs
}
