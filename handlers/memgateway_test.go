package handlers_test

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"MouqabRealEstate/store"
)

// memGateway implements handlers.Gateway over in-memory collections. It
// interprets the operator subset the query builder emits ($or, $regex with
// the i option, $gte, $lte, plain equality) so handler tests exercise the
// same matching semantics a real store would apply.
type memGateway struct {
	available   bool
	collections map[string][]bson.M
}

func newMemGateway() *memGateway {
	return &memGateway{available: true, collections: map[string][]bson.M{}}
}

func (m *memGateway) Available(context.Context) bool { return m.available }

func (m *memGateway) CollectionNames(context.Context) ([]string, error) {
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

func (m *memGateway) CreateDocument(_ context.Context, collection string, doc any) (store.DocumentID, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return store.DocumentID{}, err
	}
	var stored bson.M
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return store.DocumentID{}, err
	}
	oid := primitive.NewObjectID()
	stored["_id"] = oid
	m.collections[collection] = append(m.collections[collection], stored)
	return store.ParseDocumentID(oid.Hex())
}

func (m *memGateway) GetDocuments(_ context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {
	out := []bson.M{}
	for _, doc := range m.collections[collection] {
		if int64(len(out)) >= limit {
			break
		}
		if matchesQuery(doc, filter) {
			out = append(out, externalCopy(doc))
		}
	}
	return out, nil
}

func (m *memGateway) GetDocumentByID(_ context.Context, collection string, id store.DocumentID) (bson.M, error) {
	if doc := m.findByID(collection, id); doc != nil {
		return externalCopy(doc), nil
	}
	return nil, store.ErrNotFound
}

func (m *memGateway) SetField(_ context.Context, collection string, id store.DocumentID, field string, value any) error {
	if doc := m.findByID(collection, id); doc != nil {
		doc[field] = value
		return nil
	}
	return store.ErrNotFound
}

func (m *memGateway) findByID(collection string, id store.DocumentID) bson.M {
	for _, doc := range m.collections[collection] {
		if oid, ok := doc["_id"].(primitive.ObjectID); ok && oid.Hex() == id.String() {
			return doc
		}
	}
	return nil
}

// externalCopy mirrors the gateway contract: documents leave the store with
// a stringified _id and without aliasing internal state.
func externalCopy(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	if oid, ok := out["_id"].(primitive.ObjectID); ok {
		out["_id"] = oid.Hex()
	}
	return out
}

func matchesQuery(doc, query bson.M) bool {
	for key, cond := range query {
		if key == "$or" {
			if !matchesOr(doc, cond) {
				return false
			}
			continue
		}
		if !matchesCondition(doc[key], cond) {
			return false
		}
	}
	return true
}

func matchesOr(doc bson.M, cond any) bool {
	branches, ok := cond.(bson.A)
	if !ok {
		return false
	}
	for _, branch := range branches {
		if sub, ok := branch.(bson.M); ok && matchesQuery(doc, sub) {
			return true
		}
	}
	return false
}

func matchesCondition(value, cond any) bool {
	ops, ok := cond.(bson.M)
	if !ok {
		return equalValues(value, cond)
	}
	if pattern, isRegex := ops["$regex"]; isRegex {
		s, ok := value.(string)
		if !ok {
			return false
		}
		p, _ := pattern.(string)
		if opt, _ := ops["$options"].(string); strings.Contains(opt, "i") {
			return strings.Contains(strings.ToLower(s), strings.ToLower(p))
		}
		return strings.Contains(s, p)
	}
	for op, bound := range ops {
		fv, fok := toFloat(value)
		bv, bok := toFloat(bound)
		if !fok || !bok {
			return false
		}
		switch op {
		case "$gte":
			if fv < bv {
				return false
			}
		case "$lte":
			if fv > bv {
				return false
			}
		default:
			return false
		}
	}
	return true
}

func equalValues(value, want any) bool {
	if fv, ok := toFloat(value); ok {
		if wv, wok := toFloat(want); wok {
			return fv == wv
		}
		return false
	}
	return value == want
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
