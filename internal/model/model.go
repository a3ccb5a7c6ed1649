package model

import "time"

// Message roles as the backend understands them.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn of a conversation as held by the client.
// Thinking carries reasoning-channel text for assistant messages while a
// stream is in flight; it is a display aid and is never transmitted.
type Message struct {
	Role     string `json:"role"`
	Content  string `json:"content"`
	Thinking string `json:"thinking,omitempty"`
}

// ChatMessage is the wire form of a message sent to the AI endpoint.
// It deliberately has no thinking field.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is a persisted chat session. ID is zero until the backend
// assigns one on first save.
type Conversation struct {
	ID        int       `json:"id"`
	ProjectID *int      `json:"project_id,omitempty"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	Messages  []Message `json:"messages"`
}

// ConversationCreate is the payload for creating or updating a conversation.
type ConversationCreate struct {
	ProjectID *int      `json:"project_id,omitempty"`
	Title     string    `json:"title" validate:"required,max=255"`
	Messages  []Message `json:"messages" validate:"required"`
}

// StreamEventType discriminates the events carried on a chat stream.
type StreamEventType string

const (
	EventReasoning StreamEventType = "reasoning"
	EventContent   StreamEventType = "content"
	EventError     StreamEventType = "error"
)

// StreamEvent is one decoded record from the SSE chat stream. Chunk is set
// for reasoning and content events, Err for error events. Stream events are
// transient; they are never persisted.
type StreamEvent struct {
	Type  StreamEventType
	Chunk string
	Err   string
}

// PromptPreset is a named bundle of instruction text that reshapes how
// history and new input are packaged for the model.
type PromptPreset struct {
	ID                int    `json:"id"`
	Name              string `json:"name"`
	SystemPrompt      string `json:"system_prompt,omitempty"`
	CotGuidance       string `json:"cot_guidance,omitempty"`
	OtherInstructions string `json:"other_instructions,omitempty"`
}

// PromptPresetCreate is the payload for creating or updating a preset.
type PromptPresetCreate struct {
	Name              string `json:"name" validate:"required"`
	SystemPrompt      string `json:"system_prompt,omitempty"`
	CotGuidance       string `json:"cot_guidance,omitempty"`
	OtherInstructions string `json:"other_instructions,omitempty"`
}

// Project is a writing project.
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	BookTitle   string `json:"book_title,omitempty"`
	CoreConcept string `json:"core_concept,omitempty"`
}

// ProjectCreate is the payload for creating or updating a project.
type ProjectCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
	BookTitle   string `json:"book_title,omitempty"`
	CoreConcept string `json:"core_concept,omitempty"`
}

// Character is a character sheet within a project.
type Character struct {
	ID                 int            `json:"id"`
	Name               string         `json:"name"`
	Gender             string         `json:"gender,omitempty"`
	Age                *int           `json:"age,omitempty"`
	Occupation         string         `json:"occupation,omitempty"`
	BriefIntroduction  string         `json:"brief_introduction,omitempty"`
	PhysicalAttributes map[string]any `json:"physical_attributes,omitempty"`
	PersonalityTraits  map[string]any `json:"personality_traits,omitempty"`
	BackgroundStory    map[string]any `json:"background_story,omitempty"`
	CustomFields       map[string]any `json:"custom_fields,omitempty"`
}

// CharacterCreate is the payload for creating or updating a character.
type CharacterCreate struct {
	Name               string         `json:"name" validate:"required"`
	Gender             string         `json:"gender,omitempty"`
	Age                *int           `json:"age,omitempty"`
	Occupation         string         `json:"occupation,omitempty"`
	BriefIntroduction  string         `json:"brief_introduction,omitempty"`
	PhysicalAttributes map[string]any `json:"physical_attributes,omitempty"`
	PersonalityTraits  map[string]any `json:"personality_traits,omitempty"`
	BackgroundStory    map[string]any `json:"background_story,omitempty"`
	CustomFields       map[string]any `json:"custom_fields,omitempty"`
}

// OutlineNode is one node of a project's outline tree.
type OutlineNode struct {
	ID               int           `json:"id"`
	ProjectID        int           `json:"project_id"`
	ParentID         *int          `json:"parent_id,omitempty"`
	Title            string        `json:"title"`
	ContentBrief     string        `json:"content_brief,omitempty"`
	GeneratedContent string        `json:"generated_content,omitempty"`
	WordCountTarget  *int          `json:"word_count_target,omitempty"`
	Status           string        `json:"status,omitempty"`
	NodeOrder        *int          `json:"node_order,omitempty"`
	Children         []OutlineNode `json:"children,omitempty"`
}

// OutlineNodeCreate is the payload for creating an outline node.
type OutlineNodeCreate struct {
	Title     string `json:"title" validate:"required,min=1"`
	ProjectID int    `json:"project_id" validate:"required"`
	ParentID  *int   `json:"parent_id,omitempty"`
}

// OutlineNodeUpdate is the payload for updating an outline node. Nil fields
// are left unchanged by the backend.
type OutlineNodeUpdate struct {
	Title            *string `json:"title,omitempty"`
	ContentBrief     *string `json:"content_brief,omitempty"`
	GeneratedContent *string `json:"generated_content,omitempty"`
	WordCountTarget  *int    `json:"word_count_target,omitempty"`
	Status           *string `json:"status,omitempty"`
	NodeOrder        *int    `json:"node_order,omitempty"`
}

// Worldview is a world/genre setting bundle.
type Worldview struct {
	ID                int            `json:"id"`
	Name              string         `json:"name"`
	Description       string         `json:"description,omitempty"`
	Genre             string         `json:"genre,omitempty"`
	TimePeriod        string         `json:"time_period,omitempty"`
	TechnologyLevel   string         `json:"technology_level,omitempty"`
	MagicSystem       string         `json:"magic_system,omitempty"`
	AdditionalDetails map[string]any `json:"additional_details,omitempty"`
}

// WritingStyle is a tone/point-of-view setting bundle.
type WritingStyle struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Tone           []string       `json:"tone,omitempty"`
	PointOfView    string         `json:"point_of_view,omitempty"`
	ReferenceWorks string         `json:"reference_works,omitempty"`
	Guidelines     map[string]any `json:"guidelines,omitempty"`
}

// AIModel is a configured model endpoint on the backend. The API key never
// leaves the server; only metadata does.
type AIModel struct {
	ID        int    `json:"id"`
	Alias     string `json:"alias"`
	ModelName string `json:"model_name"`
	APIURL    string `json:"api_url,omitempty"`
}
