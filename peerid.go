package crypto

import (
	"github.com/minio/sha256-simd"
	"github.com/mr-tron/base58"
)

// ============================================================================
//                              PeerID 派生
// ============================================================================

// PeerID 节点身份标识
//
// 由序列化公钥哈希派生，是密钥信封的下游消费者。
type PeerID string

// EmptyPeerID 空的 PeerID
const EmptyPeerID = PeerID("")

// String 返回字符串形式
func (id PeerID) String() string {
	return string(id)
}

// PeerIDFromPublicKey 从公钥派生 PeerID
//
// 派生算法：Base58(SHA256(序列化公钥))。序列化公钥是规范编码，
// 因此同一把密钥在任何实现中派生出相同的 PeerID。
func PeerIDFromPublicKey(pub PublicKey) (PeerID, error) {
	hash, err := PublicKeyHash(pub)
	if err != nil {
		return EmptyPeerID, err
	}

	return PeerID(base58.Encode(hash[:])), nil
}

// PeerIDFromPrivateKey 从私钥派生 PeerID
//
// 通过获取私钥对应的公钥，然后派生 PeerID。
func PeerIDFromPrivateKey(priv PrivateKey) (PeerID, error) {
	if priv == nil {
		return EmptyPeerID, ErrNilPrivateKey
	}

	return PeerIDFromPublicKey(priv.GetPublic())
}

// PublicKeyHash 返回序列化公钥的 SHA256 哈希（32 字节）
//
// 用于 DHT 路由等需要原始哈希的场景。
func PublicKeyHash(pub PublicKey) ([32]byte, error) {
	if pub == nil {
		return [32]byte{}, ErrNilPublicKey
	}

	data, err := MarshalPublicKey(pub)
	if err != nil {
		return [32]byte{}, err
	}

	return sha256.Sum256(data), nil
}

// VerifyPeerID 验证公钥是否对应给定的 PeerID
func VerifyPeerID(pub PublicKey, id PeerID) (bool, error) {
	derivedID, err := PeerIDFromPublicKey(pub)
	if err != nil {
		return false, err
	}
	return derivedID == id, nil
}
