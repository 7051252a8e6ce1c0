package core

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"rosmsg-flatten/internal/ports"
	"rosmsg-flatten/internal/shared"
)

// separatorLine is the block separator expected by schema-consuming
// tools: exactly 80 '=' characters.
const separatorLine = "================================================================================"

// Flattener resolves fully-qualified message types against a pre-built
// index and produces the flattened closure text for a root type: the
// root definition followed by every transitively referenced custom
// type's definition, each exactly once, in depth-first discovery order.
//
// The index is read-only, and each Flatten call owns its own visited
// set, so a single Flattener may serve concurrent Flatten calls.
type Flattener struct {
	Index  ports.MsgIndexPort
	Reader ports.SourceReaderPort
}

func NewFlattener(index ports.MsgIndexPort, reader ports.SourceReaderPort) Flattener {
	return Flattener{
		Index:  index,
		Reader: reader,
	}
}

// Resolve returns the trimmed schema text for a fully-qualified type
// name.  Unknown names fail with CodeNotFound naming the type;
// unreadable sources propagate the reader's error.
func (f Flattener) Resolve(ctx context.Context, typeName string) (string, error) {
	if f.Index == nil || f.Reader == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("flattener requires index and reader ports")
	}

	location, ok := f.Index.Lookup(typeName)
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("definition not found for: " + typeName)
	}

	text, err := f.Reader.ReadSchema(location)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// Flatten produces the canonical concatenated closure text for a root
// type.  The root definition is emitted bare; each nested definition is
// preceded by the 80-'=' separator line and a "MSG: package/Type"
// header.  Blocks are joined by a single blank line.  Any failing
// Resolve aborts the whole call with no partial output.
func (f Flattener) Flatten(ctx context.Context, rootType string) (string, error) {
	definition, err := f.Resolve(ctx, rootType)
	if err != nil {
		return "", err
	}

	visited := make(map[string]struct{})
	flat := []string{definition}
	if err := f.flattenInto(ctx, rootType, definition, visited, &flat); err != nil {
		return "", err
	}
	return strings.Join(flat, "\n\n"), nil
}

// flattenInto walks one definition's field lines and appends a block
// for every newly discovered custom type, recursing depth-first.  The
// visited set guarantees single emission per type and terminates
// reference cycles.
func (f Flattener) flattenInto(ctx context.Context, currentType string, definition string, visited map[string]struct{}, flat *[]string) error {
	visited[currentType] = struct{}{}
	currentPackage := shared.PackageOf(currentType)

	for _, line := range strings.Split(definition, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		nested, ok := ResolveCustomType(parts[0], currentPackage)
		if !ok {
			continue
		}
		if _, seen := visited[nested]; seen {
			continue
		}

		nestedDef, err := f.Resolve(ctx, nested)
		if err != nil {
			return err
		}
		log.Debug().
			Str("type", nested).
			Str("parent", currentType).
			Msg("nested message discovered")

		*flat = append(*flat, separatorLine+"\nMSG: "+shared.DisplayName(nested)+"\n"+nestedDef)
		if err := f.flattenInto(ctx, nested, nestedDef, visited, flat); err != nil {
			return err
		}
	}

	return nil
}

// ResolveAll returns the raw schema text of every known type, keyed by
// fully-qualified name.  Keys are visited in lexicographic order and
// the first failing type aborts the whole operation.
func (f Flattener) ResolveAll(ctx context.Context) (map[string]string, error) {
	if f.Index == nil || f.Reader == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("flattener requires index and reader ports")
	}

	out := make(map[string]string, f.Index.Len())
	for _, key := range f.Index.Keys() {
		text, err := f.Resolve(ctx, key)
		if err != nil {
			return nil, err
		}
		out[key] = text
	}
	return out, nil
}

// FlattenAll returns the flattened closure of every known type, keyed
// by fully-qualified name.  Same ordering and fail-fast semantics as
// ResolveAll.
func (f Flattener) FlattenAll(ctx context.Context) (map[string]string, error) {
	if f.Index == nil || f.Reader == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("flattener requires index and reader ports")
	}

	out := make(map[string]string, f.Index.Len())
	for _, key := range f.Index.Keys() {
		flattened, err := f.Flatten(ctx, key)
		if err != nil {
			return nil, err
		}
		out[key] = flattened
	}
	return out, nil
}
