// Package domain holds the request and response shapes shared by the
// course, speech and HTTP layers.
package domain

// IntroID is the fixed id of the first page of every course file.
const IntroID = "intro"

// Content is one page of a course file. NextID and PreviousID are nil at
// the ends of the chain.
type Content struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Markdown   string  `json:"markdown"`
	NextID     *string `json:"nextId,omitempty"`
	PreviousID *string `json:"previousId,omitempty"`
}

type Voice struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

type Language struct {
	Code string `json:"code" yaml:"code"`
	Name string `json:"name" yaml:"name"`
}

type CourseItemType string

const (
	CourseItemFolder CourseItemType = "folder"
	CourseItemFile   CourseItemType = "file"
)

type CourseItem struct {
	Name string         `json:"name"`
	Path string         `json:"path"`
	Type CourseItemType `json:"type"`
}

type CourseFile struct {
	Name    string         `json:"name"`
	Path    string         `json:"path"`
	Type    CourseItemType `json:"type"`
	Content string         `json:"content"`
}

// CourseListing is either a directory listing (Items) or a single file
// (File set, Items empty).
type CourseListing struct {
	Items []CourseItem `json:"items"`
	File  *CourseFile  `json:"file,omitempty"`
}

type TextToSpeechRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voiceId"`
}

type TextToSpeechResponse struct {
	AudioURL string `json:"audioUrl"`
}

type SpeechToTextResponse struct {
	Text     string `json:"text"`
	AudioURL string `json:"audioUrl"`
}

type TranslationRequest struct {
	Text           string `json:"text"`
	TargetLanguage string `json:"targetLanguage"`
	VoiceID        string `json:"voiceId"`
}

type TranslationResponse struct {
	AudioURL       string `json:"audioUrl"`
	TranslatedText string `json:"translatedText"`
}
