package crypto

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignVerifyHelper(t *testing.T) {
	for _, kt := range KeyTypes {
		t.Run(kt.String(), func(t *testing.T) {
			priv, pub, err := GenerateKeyPair(kt)
			require.NoError(t, err)

			data := []byte("typed signature test")
			sig, err := Sign(priv, data)
			require.NoError(t, err)
			require.Equal(t, kt, sig.Type)

			valid, err := Verify(pub, data, sig)
			require.NoError(t, err)
			require.True(t, valid)

			valid, err = Verify(pub, []byte("other data"), sig)
			require.NoError(t, err)
			require.False(t, valid)
		})
	}
}

func TestSignVerifyHelper_TypeMismatch(t *testing.T) {
	privRSA, _, err := GenerateKeyPair(KeyTypeRSA)
	require.NoError(t, err)
	_, pubSecp, err := GenerateKeyPair(KeyTypeSecp256k1)
	require.NoError(t, err)

	data := []byte("mismatch")
	sig, err := Sign(privRSA, data)
	require.NoError(t, err)

	_, err = Verify(pubSecp, data, sig)
	require.ErrorIs(t, err, ErrSignatureTypeMismatch)
}

func TestSignVerifyHelper_Nil(t *testing.T) {
	_, pub, err := GenerateKeyPair(KeyTypeSecp256k1)
	require.NoError(t, err)

	_, err = Sign(nil, []byte("x"))
	require.ErrorIs(t, err, ErrNilPrivateKey)

	_, err = Verify(nil, []byte("x"), &Signature{})
	require.ErrorIs(t, err, ErrNilPublicKey)

	_, err = Verify(pub, []byte("x"), nil)
	require.ErrorIs(t, err, ErrNilSignature)
}

func TestSealOpen(t *testing.T) {
	for _, kt := range KeyTypes {
		t.Run(kt.String(), func(t *testing.T) {
			priv, _, err := GenerateKeyPair(kt)
			require.NoError(t, err)

			env, err := Seal(priv, []byte("/dep2p/test/1.0.0"), []byte("envelope payload"))
			require.NoError(t, err)

			payload, err := env.Open()
			require.NoError(t, err)
			require.Equal(t, []byte("envelope payload"), payload)
		})
	}
}

func TestSealOpen_Tampered(t *testing.T) {
	priv, _, err := GenerateKeyPair(KeyTypeSecp256k1)
	require.NoError(t, err)

	env, err := Seal(priv, []byte("hint"), []byte("payload"))
	require.NoError(t, err)

	env.Payload = []byte("tampered")
	_, err = env.Open()
	require.ErrorIs(t, err, ErrInvalidSignature)

	// 类型提示同样参与签名
	env.Payload = []byte("payload")
	env.PayloadType = []byte("other hint")
	_, err = env.Open()
	require.ErrorIs(t, err, ErrInvalidSignature)
}

// TestSealOpen_FramingUnambiguous 长度前缀框定使字段边界移动后签名失效
func TestSealOpen_FramingUnambiguous(t *testing.T) {
	priv, _, err := GenerateKeyPair(KeyTypeSecp256k1)
	require.NoError(t, err)

	env, err := Seal(priv, []byte("ab"), []byte("cd"))
	require.NoError(t, err)

	// 同样的拼接字节，不同的字段切分
	env.PayloadType = []byte("abc")
	env.Payload = []byte("d")
	_, err = env.Open()
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestSignedEnvelopeWire(t *testing.T) {
	for _, kt := range KeyTypes {
		t.Run(kt.String(), func(t *testing.T) {
			priv, _, err := GenerateKeyPair(kt)
			require.NoError(t, err)

			env, err := Seal(priv, []byte("/dep2p/record"), []byte("wire round trip"))
			require.NoError(t, err)

			data, err := MarshalSignedEnvelope(env)
			require.NoError(t, err)

			env2, err := UnmarshalSignedEnvelope(data)
			require.NoError(t, err)
			require.True(t, KeyEqual(env.PublicKey, env2.PublicKey))
			require.Equal(t, env.PayloadType, env2.PayloadType)
			require.Equal(t, env.Payload, env2.Payload)

			payload, err := env2.Open()
			require.NoError(t, err)
			require.Equal(t, []byte("wire round trip"), payload)
		})
	}
}

func TestSignedEnvelopeWire_Malformed(t *testing.T) {
	priv, _, err := GenerateKeyPair(KeyTypeSecp256k1)
	require.NoError(t, err)

	env, err := Seal(priv, []byte("hint"), []byte("payload"))
	require.NoError(t, err)
	data, err := MarshalSignedEnvelope(env)
	require.NoError(t, err)

	cases := map[string][]byte{
		"empty":     {},
		"badTag":    {0xff, 0x00},
		"truncated": data[:len(data)-3],
		"trailing":  append(append([]byte{}, data...), 0x00),
	}

	for name, bad := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := UnmarshalSignedEnvelope(bad)
			require.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}

	_, err = MarshalSignedEnvelope(nil)
	require.ErrorIs(t, err, ErrNilSignature)
}
