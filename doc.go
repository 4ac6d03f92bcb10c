// Package crypto 提供 DeP2P 身份密钥工具
//
// 本包实现 P2P 协议栈的密码学身份：密钥生成、规范线路序列化和
// 签名/验证。线路编码是跨实现互操作的基础——任何两个独立实现
// 必须产生和消费逐字节相同的密钥编码与签名。
//
// # 支持的密钥类型
//
//   - RSA（传统兼容）：PKCS#1 v1.5 + SHA-256 签名
//   - Secp256k1（区块链兼容）：ECDSA + DER 签名编码
//
// Ed25519 和 ECDSA(P-256) 的类型值仅作为保留线路标签存在。
//
// # 快速开始
//
// 生成密钥对：
//
//	priv, pub, err := crypto.GenerateKeyPair(crypto.KeyTypeSecp256k1)
//
// 序列化和反序列化：
//
//	data, err := crypto.MarshalPublicKey(pub)
//	pub2, err := crypto.UnmarshalPublicKey(data)
//
// 签名和验证：
//
//	sig, err := priv.Sign(data)
//	valid, err := pub.Verify(data, sig)
//
// 从公钥派生 PeerID：
//
//	peerID, err := crypto.PeerIDFromPublicKey(pub)
//
// # 线路格式
//
//   - 密钥信封：最小 protobuf 消息（字段 1 = varint 类型标签，
//     字段 2 = length-delimited 密钥字节）
//   - RSA：私钥 PKCS#1 DER，公钥 X.509 SubjectPublicKeyInfo DER
//   - Secp256k1：私钥 32 字节大端标量，公钥 SEC1 压缩点
//   - ECDSA 签名：DER SEQUENCE(INTEGER r, INTEGER s)
//
// # 并发
//
// 所有密钥对象构造后不可变，可在多个 goroutine 间并发使用，
// 无需额外同步。随机源为进程级 crypto/rand，天然并发安全。
package crypto
