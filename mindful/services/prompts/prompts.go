// Package prompts holds the fixed response copy and builds the
// provider-facing prompt for one message.
package prompts

import (
	"fmt"
	"strings"

	"mindful/services/triage"
	"mindful/sources/psql/models"
)

// SystemPrompt travels with every generation request as a separate
// instruction channel, never concatenated into the user prompt.
const SystemPrompt = `Bạn là một chuyên gia tư vấn sức khỏe tâm thần thân thiện, chuyên về quản lý stress và cải thiện giấc ngủ.

NGUYÊN TẮC QUAN TRỌNG:
1. KHÔNG đưa ra chẩn đoán y khoa
2. KHÔNG kê đơn thuốc
3. Luôn khuyên gặp bác sĩ nếu tình trạng nghiêm trọng
4. Trả lời bằng tiếng Việt, ngắn gọn (2-3 đoạn)
5. Thân thiện, đồng cảm, và tích cực
6. Tập trung vào lời khuyên thực tế có thể áp dụng ngay

Chuyên môn của bạn:
- Kỹ thuật thở và thư giãn
- Vệ sinh giấc ngủ
- Quản lý stress hàng ngày
- Mindfulness và thiền cơ bản
- Lối sống lành mạnh`

// FallbackResponse is returned when every provider fails or none are
// configured. It must always be available, so it is a plain constant.
const FallbackResponse = `Xin lỗi, hệ thống đang gặp sự cố kỹ thuật.

Trong lúc chờ đợi, bạn có thể thử:
- Hít thở sâu: Hít vào 4 giây, giữ 4 giây, thở ra 4 giây
- Đi dạo nhẹ 5-10 phút
- Nghe nhạc thư giãn

Vui lòng thử lại sau ít phút.`

const crisisResponseTemplate = `Tôi nhận thấy bạn đang trải qua thời gian rất khó khăn. Xin vui lòng liên hệ ngay với:

📞 Tổng đài tư vấn tâm lý quốc gia: %s
🏥 Hoặc đến ngay cơ sở y tế gần nhất

Bạn không đơn độc. Luôn có người sẵn sàng lắng nghe và giúp đỡ bạn.`

// CrisisResponse renders the fixed safety text with the configured hotline.
func CrisisResponse(hotline string) string {
	return fmt.Sprintf(crisisResponseTemplate, hotline)
}

const stressPrompt = `Người dùng đang gặp vấn đề về stress/căng thẳng. Tin nhắn: "%s"

Hãy đưa ra 2-3 lời khuyên cụ thể, thực tế để giảm stress ngay lập tức.
Có thể bao gồm: kỹ thuật thở, thư giãn cơ, hoặc thay đổi góc nhìn.`

const sleepPrompt = `Người dùng đang gặp vấn đề về giấc ngủ. Tin nhắn: "%s"

Hãy đưa ra 2-3 lời khuyên cải thiện giấc ngủ dựa trên nguyên tắc vệ sinh giấc ngủ.
Có thể bao gồm: thói quen trước ngủ, môi trường ngủ, hoặc kỹ thuật thư giãn.`

const generalPrompt = `Tin nhắn từ người dùng: "%s"

Hãy trả lời một cách hữu ích, tập trung vào sức khỏe tâm thần và cảm xúc.
Nếu không rõ vấn đề, hãy hỏi thêm thông tin một cách tế nhị.`

// RenderHistory serializes past turns as "User:/Bot:" line pairs, oldest
// first. Empty history renders as an empty string.
func RenderHistory(turns []models.Conversation) string {
	if len(turns) == 0 {
		return ""
	}
	lines := make([]string, 0, len(turns))
	for _, t := range turns {
		lines = append(lines, fmt.Sprintf("User: %s\nBot: %s", t.Message, t.Response))
	}
	return strings.Join(lines, "\n")
}

// Build composes the generation prompt from the intent template, the literal
// user message, and the rendered context block. A non-empty context is
// prefixed under a history header; an empty one adds no header at all.
func Build(intent triage.Intent, message, context string) string {
	var prompt string
	switch intent {
	case triage.IntentStress:
		prompt = fmt.Sprintf(stressPrompt, message)
	case triage.IntentSleep:
		prompt = fmt.Sprintf(sleepPrompt, message)
	default:
		prompt = fmt.Sprintf(generalPrompt, message)
	}
	if context != "" {
		prompt = fmt.Sprintf("Lịch sử gần đây:\n%s\n\n%s", context, prompt)
	}
	return prompt
}
