package crypto

import (
	stdcrypto "crypto"
	"crypto/rsa"
	"crypto/x509"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ============================================================================
//                              PKCS#1 / PKCS#8 转换
// ============================================================================

// RSA 私钥存在两种互不兼容的 ASN.1 序列化：
//
//   - PKCS#1：裸 SEQUENCE(version, n, e, d, p, q, dP, dQ, qInv)，
//     本包的线路格式（Raw/信封）使用它；
//   - PKCS#8：PrivateKeyInfo，在 PKCS#1 载荷外再包一层算法标识，
//     多数平台的原生密钥 API 只暴露这种形式。
//
// 下面两个函数在二者之间转换，供与原生密钥设施互操作的调用方使用。

// PKCS8ToPKCS1 解开 PKCS#8 PrivateKeyInfo 包装，返回内部的 PKCS#1 字节
//
// PKCS#8 载荷必须是 RSA 密钥，否则返回 ErrUnsupportedKeyFormat。
func PKCS8ToPKCS1(pkcs8 []byte) ([]byte, error) {
	key, err := x509.ParsePKCS8PrivateKey(pkcs8)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKeyFormat, err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA PrivateKeyInfo", ErrUnsupportedKeyFormat)
	}

	return x509.MarshalPKCS1PrivateKey(rsaKey), nil
}

// PKCS1ToPKCS8 将 PKCS#1 字节重新包装为 PKCS#8 PrivateKeyInfo
func PKCS1ToPKCS8(pkcs1 []byte) ([]byte, error) {
	key, err := x509.ParsePKCS1PrivateKey(pkcs1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}

	pkcs8, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedKeyFormat, err)
	}

	return pkcs8, nil
}

// ============================================================================
//                              原生密钥适配
// ============================================================================

// KeyPairFromStdKey 从原生密钥对象构造本包的密钥对
//
// 支持 *rsa.PrivateKey 和 *secp256k1.PrivateKey；
// 其他类型返回 ErrUnsupportedKeyFormat。
func KeyPairFromStdKey(priv stdcrypto.PrivateKey) (PrivateKey, PublicKey, error) {
	if priv == nil {
		return nil, nil, ErrNilPrivateKey
	}

	switch p := priv.(type) {
	case *rsa.PrivateKey:
		if p.N.BitLen() < RSAMinKeySize {
			return nil, nil, ErrRsaKeyTooSmall
		}
		return &RSAPrivateKey{k: p}, &RSAPublicKey{k: &p.PublicKey}, nil

	case *secp256k1.PrivateKey:
		return &Secp256k1PrivateKey{k: p}, &Secp256k1PublicKey{k: p.PubKey()}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyFormat, priv)
	}
}

// PrivKeyToStdKey 将本包的私钥转换为原生密钥对象
func PrivKeyToStdKey(priv PrivateKey) (stdcrypto.PrivateKey, error) {
	if priv == nil {
		return nil, ErrNilPrivateKey
	}

	switch p := priv.(type) {
	case *RSAPrivateKey:
		return p.k, nil
	case *Secp256k1PrivateKey:
		return p.k, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyFormat, priv)
	}
}

// PubKeyToStdKey 将本包的公钥转换为原生密钥对象
func PubKeyToStdKey(pub PublicKey) (stdcrypto.PublicKey, error) {
	if pub == nil {
		return nil, ErrNilPublicKey
	}

	switch p := pub.(type) {
	case *RSAPublicKey:
		return p.k, nil
	case *Secp256k1PublicKey:
		return p.k, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedKeyFormat, pub)
	}
}
