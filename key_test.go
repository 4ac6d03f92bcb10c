package crypto

import (
	"crypto/rand"
	"testing"
)

// TestKeyType 测试密钥类型名称
func TestKeyType(t *testing.T) {
	tests := []struct {
		kt   KeyType
		want string
	}{
		{KeyTypeUnspecified, "Unspecified"},
		{KeyTypeRSA, "RSA"},
		{KeyTypeEd25519, "Ed25519"},
		{KeyTypeSecp256k1, "Secp256k1"},
		{KeyTypeECDSA, "ECDSA"},
		{KeyType(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kt.String(); got != tt.want {
			t.Errorf("KeyType(%d).String() = %q, want %q", tt.kt, got, tt.want)
		}
	}
}

// TestKeyTypeValues 测试线路值的稳定性
func TestKeyTypeValues(t *testing.T) {
	// 线路值与 key.proto 对齐，绝不能重新编号
	if KeyTypeUnspecified != 0 {
		t.Errorf("KeyTypeUnspecified = %d, want 0", KeyTypeUnspecified)
	}
	if KeyTypeRSA != 1 {
		t.Errorf("KeyTypeRSA = %d, want 1", KeyTypeRSA)
	}
	if KeyTypeEd25519 != 2 {
		t.Errorf("KeyTypeEd25519 = %d, want 2", KeyTypeEd25519)
	}
	if KeyTypeSecp256k1 != 3 {
		t.Errorf("KeyTypeSecp256k1 = %d, want 3", KeyTypeSecp256k1)
	}
	if KeyTypeECDSA != 4 {
		t.Errorf("KeyTypeECDSA = %d, want 4", KeyTypeECDSA)
	}
}

// TestGenerateKeyPair 测试密钥对生成
func TestGenerateKeyPair(t *testing.T) {
	tests := []struct {
		name    string
		keyType KeyType
		wantErr bool
	}{
		{"Secp256k1", KeyTypeSecp256k1, false},
		{"RSA", KeyTypeRSA, false},
		{"Ed25519Reserved", KeyTypeEd25519, true},
		{"ECDSAReserved", KeyTypeECDSA, true},
		{"Unknown", KeyType(99), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			priv, pub, err := GenerateKeyPair(tt.keyType)
			if (err != nil) != tt.wantErr {
				t.Errorf("GenerateKeyPair(%v) error = %v, wantErr %v", tt.keyType, err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if priv == nil {
					t.Error("GenerateKeyPair() returned nil private key")
				}
				if pub == nil {
					t.Error("GenerateKeyPair() returned nil public key")
				}
				if priv.Type() != tt.keyType {
					t.Errorf("PrivateKey.Type() = %v, want %v", priv.Type(), tt.keyType)
				}
				if pub.Type() != tt.keyType {
					t.Errorf("PublicKey.Type() = %v, want %v", pub.Type(), tt.keyType)
				}
			}
		})
	}
}

// TestSignAndVerify 测试签名和验证
func TestSignAndVerify(t *testing.T) {
	for _, kt := range KeyTypes {
		t.Run(kt.String(), func(t *testing.T) {
			priv, pub, err := GenerateKeyPair(kt)
			if err != nil {
				t.Fatalf("GenerateKeyPair(%v) failed: %v", kt, err)
			}

			data := []byte("test message for signing")
			sig, err := priv.Sign(data)
			if err != nil {
				t.Fatalf("Sign() failed: %v", err)
			}

			valid, err := pub.Verify(data, sig)
			if err != nil {
				t.Fatalf("Verify() failed: %v", err)
			}
			if !valid {
				t.Error("Verify() returned false for valid signature")
			}

			// 验证错误数据
			badData := []byte("wrong message")
			valid, err = pub.Verify(badData, sig)
			if err != nil {
				t.Fatalf("Verify() with bad data failed: %v", err)
			}
			if valid {
				t.Error("Verify() returned true for wrong message")
			}
		})
	}
}

// TestGetPublicDeterministic 测试公钥派生的确定性
func TestGetPublicDeterministic(t *testing.T) {
	for _, kt := range KeyTypes {
		t.Run(kt.String(), func(t *testing.T) {
			priv, pub, err := GenerateKeyPair(kt)
			if err != nil {
				t.Fatalf("GenerateKeyPair(%v) failed: %v", kt, err)
			}

			// 同一私钥材料反序列化后必须派生出逐字节相同的公钥
			raw, err := priv.Raw()
			if err != nil {
				t.Fatalf("Raw() failed: %v", err)
			}

			priv2, err := unmarshalPrivateKeyByType(kt, raw)
			if err != nil {
				t.Fatalf("unmarshal private key failed: %v", err)
			}

			pubRaw, _ := pub.Raw()
			pubRaw2, _ := priv2.GetPublic().Raw()
			if string(pubRaw) != string(pubRaw2) {
				t.Error("derived public key encoding differs from original")
			}
		})
	}
}

// TestKeyEqual 测试密钥比较
func TestKeyEqual(t *testing.T) {
	priv1, pub1, _ := GenerateKeyPair(KeyTypeSecp256k1)
	priv2, pub2, _ := GenerateKeyPair(KeyTypeSecp256k1)

	if !KeyEqual(priv1, priv1) {
		t.Error("KeyEqual(priv1, priv1) = false")
	}
	if !KeyEqual(pub1, pub1) {
		t.Error("KeyEqual(pub1, pub1) = false")
	}
	if KeyEqual(priv1, priv2) {
		t.Error("KeyEqual(priv1, priv2) = true")
	}
	if KeyEqual(pub1, pub2) {
		t.Error("KeyEqual(pub1, pub2) = true")
	}

	// 跨类型比较
	_, rsaPub, err := GenerateRSAKey(512, rand.Reader)
	if err != nil {
		t.Fatalf("GenerateRSAKey() failed: %v", err)
	}
	if KeyEqual(pub1, rsaPub) {
		t.Error("KeyEqual across key types = true")
	}
}
