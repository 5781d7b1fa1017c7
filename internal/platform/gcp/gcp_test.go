package gcp

import (
	"testing"

	speechpb "cloud.google.com/go/speech/apiv1/speechpb"
)

func TestPublicURL(t *testing.T) {
	cases := []struct {
		cfg  BucketConfig
		key  string
		want string
	}{
		{BucketConfig{Name: "audio"}, "a.mp3", "https://storage.googleapis.com/audio/a.mp3"},
		{BucketConfig{Name: "audio", CDNDomain: "cdn.example.com"}, "/a.mp3", "https://cdn.example.com/a.mp3"},
		{BucketConfig{Name: "audio", CDNDomain: "http://localhost:4443/"}, "a.mp3", "http://localhost:4443/a.mp3"},
	}
	for _, tc := range cases {
		if got := PublicURL(tc.cfg, tc.key); got != tc.want {
			t.Fatalf("PublicURL(%+v, %q): got=%q want=%q", tc.cfg, tc.key, got, tc.want)
		}
	}
}

func TestContentTypeForKey(t *testing.T) {
	if got := ContentTypeForKey("x/Y.MP3"); got != "audio/mpeg" {
		t.Fatalf("mp3: got=%q", got)
	}
	if got := ContentTypeForKey("notes.txt"); got != "" {
		t.Fatalf("txt: got=%q", got)
	}
}

func TestInferEncoding(t *testing.T) {
	if got := inferEncoding("/tmp/a.mp3"); got != speechpb.RecognitionConfig_MP3 {
		t.Fatalf("mp3: got=%v", got)
	}
	if got := inferEncoding("/tmp/a.webm"); got != speechpb.RecognitionConfig_WEBM_OPUS {
		t.Fatalf("webm: got=%v", got)
	}
	if got := inferEncoding("/tmp/a.bin"); got != speechpb.RecognitionConfig_ENCODING_UNSPECIFIED {
		t.Fatalf("bin: got=%v", got)
	}
}

func TestJoinTranscript(t *testing.T) {
	resp := &speechpb.LongRunningRecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: " the cat "}}},
			{},
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "sat down"}}},
		},
	}
	if got := joinTranscript(resp); got != "the cat sat down" {
		t.Fatalf("got=%q", got)
	}
	if got := joinTranscript(nil); got != "" {
		t.Fatalf("nil: got=%q", got)
	}
}
