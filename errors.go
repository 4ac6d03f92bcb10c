// Package crypto 提供 DeP2P 身份密钥工具
package crypto

import "errors"

// ============================================================================
//                              错误定义
// ============================================================================

// 密钥相关错误
var (
	// ErrBadKeyType 不支持的密钥类型（未知或保留的线路标签）
	ErrBadKeyType = errors.New("invalid or unsupported key type")

	// ErrNilPrivateKey 私钥为空
	ErrNilPrivateKey = errors.New("nil private key")

	// ErrNilPublicKey 公钥为空
	ErrNilPublicKey = errors.New("nil public key")

	// ErrInvalidKeySize 密钥大小无效
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPublicKey 公钥无效
	ErrInvalidPublicKey = errors.New("invalid public key")

	// ErrInvalidPrivateKey 私钥无效
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrRsaKeyTooSmall RSA 模数小于 512 位
	//
	// 512 位是能够对 256 位摘要做 PKCS#1 v1.5 签名的最小模数。
	ErrRsaKeyTooSmall = errors.New("rsa keys must be >= 512 bits to be useful")

	// ErrRsaKeyTooBig RSA 模数大于 8192 位
	ErrRsaKeyTooBig = errors.New("rsa keys must be <= 8192 bits")

	// ErrUnsupportedKeyFormat 原生密钥不是预期的编码格式
	ErrUnsupportedKeyFormat = errors.New("unsupported key format")
)

// 签名相关错误
var (
	// ErrNilSignature 签名为空
	ErrNilSignature = errors.New("nil signature")

	// ErrInvalidSignature 签名无效
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrSignatureTypeMismatch 签名类型不匹配
	ErrSignatureTypeMismatch = errors.New("signature type mismatch")

	// ErrInvalidSignatureEncoding ECDSA 签名不是两个整数的 DER 序列
	ErrInvalidSignatureEncoding = errors.New("signature is not a DER sequence of two integers")
)

// 序列化相关错误
var (
	// ErrMalformedEnvelope 信封字节结构无效
	ErrMalformedEnvelope = errors.New("malformed key envelope")

	// ErrMarshalFailed 序列化失败
	ErrMarshalFailed = errors.New("marshal failed")
)
