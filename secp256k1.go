package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"golang.org/x/crypto/cryptobyte"
	cryptobyteasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// Secp256k1 密钥常量
const (
	// Secp256k1PrivateKeySize Secp256k1 私钥大小（32 字节）
	Secp256k1PrivateKeySize = 32
	// Secp256k1PublicKeySize Secp256k1 压缩公钥大小（33 字节）
	Secp256k1PublicKeySize = 33
)

// ============================================================================
//                              Secp256k1PublicKey
// ============================================================================

// Secp256k1PublicKey Secp256k1 公钥实现
type Secp256k1PublicKey struct {
	k *secp256k1.PublicKey
}

// Raw 返回 SEC1 压缩格式的公钥字节（33 字节）
//
// 总是压缩形式：前缀 0x02（y 为偶）或 0x03（y 为奇），后跟 x 坐标。
func (k *Secp256k1PublicKey) Raw() ([]byte, error) {
	return k.k.SerializeCompressed(), nil
}

// Type 返回密钥类型
func (k *Secp256k1PublicKey) Type() KeyType {
	return KeyTypeSecp256k1
}

// Equals 比较两个公钥是否相等
func (k *Secp256k1PublicKey) Equals(other Key) bool {
	sk, ok := other.(*Secp256k1PublicKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return k.k.IsEqual(sk.k)
}

// Verify 使用此公钥验证 DER 编码的 ECDSA 签名
//
// 签名必须恰好是两个整数的 DER SEQUENCE，否则返回
// ErrInvalidSignatureEncoding。r、s 取绝对值后交给曲线原语验证：
// 本实现不拒绝可延展签名，s 与 n-s 两种形式都接受。
func (k *Secp256k1PublicKey) Verify(data, sig []byte) (bool, error) {
	var (
		input = cryptobyte.String(sig)
		inner cryptobyte.String
		r, s  = new(big.Int), new(big.Int)
	)
	if !input.ReadASN1(&inner, cryptobyteasn1.SEQUENCE) || !input.Empty() ||
		!inner.ReadASN1Integer(r) ||
		!inner.ReadASN1Integer(s) ||
		!inner.Empty() {
		return false, ErrInvalidSignatureEncoding
	}

	r.Abs(r)
	s.Abs(s)

	// 超过 256 位的值不可能是有效的模 n 标量
	if r.BitLen() > 256 || s.BitLen() > 256 {
		return false, nil
	}

	var rs, ss secp256k1.ModNScalar
	if rs.SetByteSlice(r.FillBytes(make([]byte, 32))) ||
		ss.SetByteSlice(s.FillBytes(make([]byte, 32))) {
		// 标量溢出（>= n），由原语的范围检查判定为无效
		return false, nil
	}

	hash := sha256.Sum256(data)
	return secpecdsa.NewSignature(&rs, &ss).Verify(hash[:], k.k), nil
}

// ============================================================================
//                              Secp256k1PrivateKey
// ============================================================================

// Secp256k1PrivateKey Secp256k1 私钥实现
type Secp256k1PrivateKey struct {
	k *secp256k1.PrivateKey
}

// Raw 返回原始私钥字节（32 字节大端标量）
func (k *Secp256k1PrivateKey) Raw() ([]byte, error) {
	return k.k.Serialize(), nil
}

// Type 返回密钥类型
func (k *Secp256k1PrivateKey) Type() KeyType {
	return KeyTypeSecp256k1
}

// Equals 比较两个私钥是否相等
func (k *Secp256k1PrivateKey) Equals(other Key) bool {
	sk, ok := other.(*Secp256k1PrivateKey)
	if !ok {
		return KeyEqual(k, other)
	}
	return subtle.ConstantTimeCompare(k.k.Serialize(), sk.k.Serialize()) == 1
}

// GetPublic 返回对应的公钥
func (k *Secp256k1PrivateKey) GetPublic() PublicKey {
	return &Secp256k1PublicKey{k: k.k.PubKey()}
}

// Sign 使用此私钥对数据的 SHA-256 摘要做 ECDSA 签名
//
// nonce 策略由曲线原语决定（RFC 6979 确定性 nonce），
// 返回 DER 编码的 SEQUENCE(INTEGER r, INTEGER s)。
func (k *Secp256k1PrivateKey) Sign(data []byte) ([]byte, error) {
	hash := sha256.Sum256(data)
	return secpecdsa.Sign(k.k, hash[:]).Serialize(), nil
}

// ============================================================================
//                              工厂函数
// ============================================================================

// GenerateSecp256k1Key 生成新的 Secp256k1 密钥对
//
// 标量 d 从 src 取随机值，范围 [1, n-1]；公钥点 Q = d*G 由曲线原语计算。
func GenerateSecp256k1Key(src io.Reader) (PrivateKey, PublicKey, error) {
	priv, err := secp256k1.GeneratePrivateKeyFromRand(src)
	if err != nil {
		return nil, nil, err
	}

	return &Secp256k1PrivateKey{k: priv}, &Secp256k1PublicKey{k: priv.PubKey()}, nil
}

// UnmarshalSecp256k1PublicKey 从 SEC1 点编码反序列化 Secp256k1 公钥
//
// 支持压缩格式（33 字节）和未压缩格式（65 字节）；点必须在曲线上。
func UnmarshalSecp256k1PublicKey(data []byte) (PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return &Secp256k1PublicKey{k: pub}, nil
}

// UnmarshalSecp256k1PrivateKey 从字节反序列化 Secp256k1 私钥
//
// 字节解释为无符号大端整数；除曲线原语自身的处理外不做额外的
// 范围校验。
func UnmarshalSecp256k1PrivateKey(data []byte) (PrivateKey, error) {
	if len(data) != Secp256k1PrivateKeySize {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d",
			ErrInvalidKeySize, Secp256k1PrivateKeySize, len(data))
	}

	return &Secp256k1PrivateKey{k: secp256k1.PrivKeyFromBytes(data)}, nil
}
