package tdapi

import (
	"encoding/json"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJsonInt64Boundaries(t *testing.T) {
	values := []int64{
		0, 1, -1,
		math.MaxInt32, math.MaxInt32 + 1, math.MinInt32, math.MinInt32 - 1,
		1 << 53, 1<<53 + 1, -(1 << 53), -(1 << 53) - 1,
		math.MaxInt64, math.MinInt64,
	}
	for _, v := range values {
		t.Run(strconv.FormatInt(v, 10), func(t *testing.T) {
			data, err := json.Marshal(JsonInt64(v))
			require.NoError(t, err)
			require.Equal(t, strconv.Quote(strconv.FormatInt(v, 10)), string(data))

			var got JsonInt64
			require.NoError(t, json.Unmarshal(data, &got))
			require.EqualValues(t, v, got)

			var bare JsonInt64
			require.NoError(t, json.Unmarshal([]byte(strconv.FormatInt(v, 10)), &bare))
			require.EqualValues(t, v, bare)
		})
	}
}

func TestJsonInt64Invalid(t *testing.T) {
	for _, in := range []string{`"abc"`, `"1.5"`, `1e3`, `""`, `"9223372036854775808"`} {
		var v JsonInt64
		require.Error(t, json.Unmarshal([]byte(in), &v), in)
	}
}

func TestJsonInt64InRecords(t *testing.T) {
	opt := NewOptionValueIntegerBuilder().Extra("").Value(math.MaxInt64).Build()
	data, err := json.Marshal(opt)
	require.NoError(t, err)
	require.JSONEq(t, `{"@type":"optionValueInteger","value":"9223372036854775807"}`, string(data))

	statuses, err := FromJSON[EmojiStatuses]([]byte(`{"@type":"emojiStatuses","custom_emoji_ids":["5368324170671202286",42]}`))
	require.NoError(t, err)
	require.Equal(t, []JsonInt64{5368324170671202286, 42}, statuses.CustomEmojiIds)
}
