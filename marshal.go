package crypto

import (
	"fmt"
	"math"

	"github.com/multiformats/go-varint"
)

// ============================================================================
//                              信封线路格式
// ============================================================================

// 密钥信封是一个最小的 protobuf 消息（两个字段都必须出现）：
//
//   ┌─────────────────────────────────────────────────────────────┐
//   │                    公钥/私钥信封格式                          │
//   ├─────────────────────────────────────────────────────────────┤
//   │  字段 1 (0x08): varint      KeyType                         │
//   │  字段 2 (0x12): len-delim   规范密钥字节                      │
//   └─────────────────────────────────────────────────────────────┘
//
// 与 key.proto 中的 PublicKey/PrivateKey 消息线路兼容，任何 protobuf
// 实现都能直接消费。字段按编号顺序出现，无多余字节。

const (
	// envelopeTypeTag 字段 1 的线路标签（编号 1，类型 varint）
	envelopeTypeTag = 0x08
	// envelopeDataTag 字段 2 的线路标签（编号 2，类型 length-delimited）
	envelopeDataTag = 0x12
)

// marshalEnvelope 构造类型标签 + 原始密钥字节的信封
func marshalEnvelope(keyType KeyType, raw []byte) []byte {
	size := 1 + varint.UvarintSize(uint64(keyType)) +
		1 + varint.UvarintSize(uint64(len(raw))) + len(raw)

	buf := make([]byte, size)
	n := 0

	buf[n] = envelopeTypeTag
	n++
	n += varint.PutUvarint(buf[n:], uint64(keyType))

	buf[n] = envelopeDataTag
	n++
	n += varint.PutUvarint(buf[n:], uint64(len(raw)))
	copy(buf[n:], raw)

	return buf
}

// unmarshalEnvelope 解析信封，返回类型标签和原始密钥字节
//
// 两个字段都必须出现且按序排列；缺字段、标签错误、varint 截断、
// 长度不符或尾部有多余字节都视为信封结构无效。
func unmarshalEnvelope(data []byte) (KeyType, []byte, error) {
	if len(data) < 2 || data[0] != envelopeTypeTag {
		return KeyTypeUnspecified, nil, ErrMalformedEnvelope
	}

	kt, n, err := varint.FromUvarint(data[1:])
	if err != nil || kt > math.MaxInt32 {
		return KeyTypeUnspecified, nil, ErrMalformedEnvelope
	}
	rest := data[1+n:]

	if len(rest) < 1 || rest[0] != envelopeDataTag {
		return KeyTypeUnspecified, nil, ErrMalformedEnvelope
	}

	size, n, err := varint.FromUvarint(rest[1:])
	if err != nil {
		return KeyTypeUnspecified, nil, ErrMalformedEnvelope
	}
	rest = rest[1+n:]

	if uint64(len(rest)) != size {
		return KeyTypeUnspecified, nil, ErrMalformedEnvelope
	}

	return KeyType(kt), rest, nil
}

// ============================================================================
//                              公钥序列化
// ============================================================================

// MarshalPublicKey 将公钥序列化为带类型标签的信封字节
func MarshalPublicKey(key PublicKey) ([]byte, error) {
	if key == nil {
		return nil, ErrNilPublicKey
	}

	raw, err := key.Raw()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}

	return marshalEnvelope(key.Type(), raw), nil
}

// UnmarshalPublicKey 从信封字节反序列化公钥
//
// 解析信封并按类型标签路由到对应算法的反序列化函数。
// 未知类型标签返回 ErrBadKeyType，结构无效返回 ErrMalformedEnvelope。
func UnmarshalPublicKey(data []byte) (PublicKey, error) {
	keyType, raw, err := unmarshalEnvelope(data)
	if err != nil {
		return nil, err
	}

	return unmarshalPublicKeyByType(keyType, raw)
}

// ============================================================================
//                              私钥序列化
// ============================================================================

// MarshalPrivateKey 将私钥序列化为带类型标签的信封字节
func MarshalPrivateKey(key PrivateKey) ([]byte, error) {
	if key == nil {
		return nil, ErrNilPrivateKey
	}

	raw, err := key.Raw()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarshalFailed, err)
	}

	return marshalEnvelope(key.Type(), raw), nil
}

// UnmarshalPrivateKey 从信封字节反序列化私钥
func UnmarshalPrivateKey(data []byte) (PrivateKey, error) {
	keyType, raw, err := unmarshalEnvelope(data)
	if err != nil {
		return nil, err
	}

	return unmarshalPrivateKeyByType(keyType, raw)
}
