package crypto

import (
	"github.com/multiformats/go-varint"
)

// ============================================================================
//                              签名辅助
// ============================================================================

// Signature 带类型标签的签名
type Signature struct {
	// Type 签名使用的密钥类型
	Type KeyType

	// Data 签名数据
	Data []byte
}

// Sign 使用私钥签名数据
func Sign(key PrivateKey, data []byte) (*Signature, error) {
	if key == nil {
		return nil, ErrNilPrivateKey
	}

	sig, err := key.Sign(data)
	if err != nil {
		return nil, err
	}

	return &Signature{
		Type: key.Type(),
		Data: sig,
	}, nil
}

// Verify 使用公钥验证签名
func Verify(key PublicKey, data []byte, sig *Signature) (bool, error) {
	if key == nil {
		return false, ErrNilPublicKey
	}
	if sig == nil {
		return false, ErrNilSignature
	}
	if key.Type() != sig.Type {
		return false, ErrSignatureTypeMismatch
	}

	return key.Verify(data, sig.Data)
}

// ============================================================================
//                              签名信封
// ============================================================================

// SignedEnvelope 签名信封
//
// 把任意载荷和签名者公钥、载荷类型提示绑定在一起，供握手/认证层
// 传递经过签名的记录。
type SignedEnvelope struct {
	// PublicKey 签名者公钥
	PublicKey PublicKey

	// PayloadType 载荷类型提示
	PayloadType []byte

	// Payload 信封载荷
	Payload []byte

	// Signature 签名
	Signature *Signature
}

// envelopeSigningPayload 构造被签名的字节
//
// 每个字段带 varint 长度前缀，避免类型提示和载荷的拼接歧义。
func envelopeSigningPayload(payloadType, payload []byte) []byte {
	buf := make([]byte, 0,
		varint.UvarintSize(uint64(len(payloadType)))+len(payloadType)+
			varint.UvarintSize(uint64(len(payload)))+len(payload))

	buf = append(buf, varint.ToUvarint(uint64(len(payloadType)))...)
	buf = append(buf, payloadType...)
	buf = append(buf, varint.ToUvarint(uint64(len(payload)))...)
	buf = append(buf, payload...)
	return buf
}

// Seal 创建签名信封
func Seal(key PrivateKey, payloadType, payload []byte) (*SignedEnvelope, error) {
	if key == nil {
		return nil, ErrNilPrivateKey
	}

	sig, err := Sign(key, envelopeSigningPayload(payloadType, payload))
	if err != nil {
		return nil, err
	}

	return &SignedEnvelope{
		PublicKey:   key.GetPublic(),
		PayloadType: payloadType,
		Payload:     payload,
		Signature:   sig,
	}, nil
}

// Open 验证签名并返回信封载荷
func (e *SignedEnvelope) Open() ([]byte, error) {
	valid, err := Verify(e.PublicKey, envelopeSigningPayload(e.PayloadType, e.Payload), e.Signature)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrInvalidSignature
	}
	return e.Payload, nil
}

// ============================================================================
//                              签名信封线路格式
// ============================================================================

// 签名信封同样是一个最小 protobuf 消息：
//
//   字段 1 (0x0a): len-delim  签名者公钥（密钥信封字节）
//   字段 2 (0x12): len-delim  载荷类型提示
//   字段 3 (0x1a): len-delim  载荷
//   字段 5 (0x2a): len-delim  签名字节
//
// 字段 4 预留给将来的序列号。

const (
	signedEnvelopeKeyTag     = 0x0a
	signedEnvelopeTypeTag    = 0x12
	signedEnvelopePayloadTag = 0x1a
	signedEnvelopeSigTag     = 0x2a
)

// appendLenDelimited 追加一个 length-delimited 字段
func appendLenDelimited(buf []byte, tag byte, data []byte) []byte {
	buf = append(buf, tag)
	buf = append(buf, varint.ToUvarint(uint64(len(data)))...)
	return append(buf, data...)
}

// readLenDelimited 读取一个指定标签的 length-delimited 字段
func readLenDelimited(data []byte, tag byte) (field, rest []byte, err error) {
	if len(data) < 1 || data[0] != tag {
		return nil, nil, ErrMalformedEnvelope
	}

	size, n, err := varint.FromUvarint(data[1:])
	if err != nil {
		return nil, nil, ErrMalformedEnvelope
	}
	data = data[1+n:]

	if uint64(len(data)) < size {
		return nil, nil, ErrMalformedEnvelope
	}

	return data[:size], data[size:], nil
}

// MarshalSignedEnvelope 将签名信封序列化为线路字节
func MarshalSignedEnvelope(e *SignedEnvelope) ([]byte, error) {
	if e == nil || e.Signature == nil {
		return nil, ErrNilSignature
	}

	keyBytes, err := MarshalPublicKey(e.PublicKey)
	if err != nil {
		return nil, err
	}

	var buf []byte
	buf = appendLenDelimited(buf, signedEnvelopeKeyTag, keyBytes)
	buf = appendLenDelimited(buf, signedEnvelopeTypeTag, e.PayloadType)
	buf = appendLenDelimited(buf, signedEnvelopePayloadTag, e.Payload)
	buf = appendLenDelimited(buf, signedEnvelopeSigTag, e.Signature.Data)
	return buf, nil
}

// UnmarshalSignedEnvelope 从线路字节反序列化签名信封
//
// 只做结构解析，不验证签名；调用方随后通过 Open 验证。
func UnmarshalSignedEnvelope(data []byte) (*SignedEnvelope, error) {
	keyBytes, rest, err := readLenDelimited(data, signedEnvelopeKeyTag)
	if err != nil {
		return nil, err
	}

	payloadType, rest, err := readLenDelimited(rest, signedEnvelopeTypeTag)
	if err != nil {
		return nil, err
	}

	payload, rest, err := readLenDelimited(rest, signedEnvelopePayloadTag)
	if err != nil {
		return nil, err
	}

	sig, rest, err := readLenDelimited(rest, signedEnvelopeSigTag)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, ErrMalformedEnvelope
	}

	pub, err := UnmarshalPublicKey(keyBytes)
	if err != nil {
		return nil, err
	}

	return &SignedEnvelope{
		PublicKey:   pub,
		PayloadType: payloadType,
		Payload:     payload,
		Signature:   &Signature{Type: pub.Type(), Data: sig},
	}, nil
}
