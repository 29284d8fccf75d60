package value

import (
	"bytes"

	"github.com/cwbudde/go-jfes/internal/config"
	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
)

// GetChild searches an object's pairs for an exact byte-wise key match and
// returns the child value (non-owning), or nil if not found or v is not
// an object. It fails silently rather than returning a status code.
func (v *Value) GetChild(key []byte) *Value {
	p := v.GetMappedChild(key)
	if p == nil {
		return nil
	}
	return p.Value
}

// GetMappedChild is GetChild but returns the pair record itself.
func (v *Value) GetMappedChild(key []byte) *Pair {
	if v == nil || v.Kind != token.Object {
		return nil
	}
	for i := range v.pairs {
		if bytes.Equal(v.pairs[i].Key(), key) {
			return &v.pairs[i]
		}
	}
	return nil
}

// AddToArray appends item to the array, transferring ownership of item to
// the array. Fails with InvalidArguments if v is not an array.
func AddToArray(v *Value, item *Value) status.Code {
	if v == nil || v.Kind != token.Array || item == nil {
		return status.InvalidArguments
	}
	v.items = append(v.items, item)
	return status.Success
}

// AddToArrayAt inserts item at min(index, len), shifting subsequent
// elements right by one. Ownership of item transfers to the array.
func AddToArrayAt(v *Value, item *Value, index int) status.Code {
	if v == nil || v.Kind != token.Array || item == nil || index < 0 {
		return status.InvalidArguments
	}
	if index > len(v.items) {
		index = len(v.items)
	}
	v.items = append(v.items, nil)
	copy(v.items[index+1:], v.items[index:])
	v.items[index] = item
	return status.Success
}

// RemoveFromArray frees and releases the element at index, shifting the
// tail leftward. Fails with NotFound if index is out of range.
func RemoveFromArray(cfg *config.Config, v *Value, index int) status.Code {
	if v == nil || v.Kind != token.Array {
		return status.InvalidArguments
	}
	if index < 0 || index >= len(v.items) {
		return status.NotFound
	}
	v.items[index].Free(cfg)
	copy(v.items[index:], v.items[index+1:])
	v.items[len(v.items)-1] = nil
	v.items = v.items[:len(v.items)-1]
	return status.Success
}

// SetObjectProperty installs item under key: if the key already exists,
// the existing value is freed and replaced in place, preserving the pair's
// position; otherwise a new pair is appended.
// Ownership of item transfers on success. On failure (v not an object,
// nil item, or allocator exhaustion for a new key), nothing is freed, so
// the caller retains ownership of item.
func SetObjectProperty(cfg *config.Config, v *Value, item *Value, key []byte) status.Code {
	if v == nil || v.Kind != token.Object || item == nil {
		return status.InvalidArguments
	}
	if p := v.GetMappedChild(key); p != nil {
		p.Value.Free(cfg)
		p.Value = item
		return status.Success
	}
	keyBuf, keyLen, ok := allocString(cfg, key)
	if !ok {
		return status.OutOfMemory
	}
	v.pairs = append(v.pairs, Pair{key: keyBuf, klen: keyLen, Value: item})
	return status.Success
}

// RemoveObjectProperty locates key, frees its key buffer and value, and
// shifts subsequent pairs leftward. Fails with NotFound if key is absent.
func RemoveObjectProperty(cfg *config.Config, v *Value, key []byte) status.Code {
	if v == nil || v.Kind != token.Object {
		return status.InvalidArguments
	}
	for i := range v.pairs {
		if bytes.Equal(v.pairs[i].Key(), key) {
			v.pairs[i].Value.Free(cfg)
			cfg.Release(v.pairs[i].key)
			copy(v.pairs[i:], v.pairs[i+1:])
			v.pairs[len(v.pairs)-1] = Pair{}
			v.pairs = v.pairs[:len(v.pairs)-1]
			return status.Success
		}
	}
	return status.NotFound
}
