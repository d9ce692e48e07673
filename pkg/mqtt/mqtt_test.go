package mqtt

import "testing"

func TestRequestResponseTopics(t *testing.T) {
	if got, want := requestTopic("antispam/stats"), "pancyguard/request/antispam/stats"; got != want {
		t.Errorf("requestTopic = %q, quería %q", got, want)
	}
	if got, want := responseTopic("antispam/stats", "abc-123"), "pancyguard/response/antispam/stats/abc-123"; got != want {
		t.Errorf("responseTopic = %q, quería %q", got, want)
	}
}

func TestRequestPayloadMap(t *testing.T) {
	req := MqttRequest{
		CorrelationID: "abc-123",
		Payload:       map[string]interface{}{"guildId": "guild-1"},
	}

	pm := requestPayloadMap(req, "antispam/stats")
	if pm["guildId"] != "guild-1" {
		t.Errorf("payload guildId = %v, quería guild-1", pm["guildId"])
	}
	if pm["_topic"] != "antispam/stats" {
		t.Errorf("payload _topic = %v, quería antispam/stats", pm["_topic"])
	}
}

func TestRequestPayloadMapNilPayload(t *testing.T) {
	pm := requestPayloadMap(MqttRequest{CorrelationID: "abc-123"}, "status")
	if len(pm) != 1 || pm["_topic"] != "status" {
		t.Errorf("payload sin datos = %v, quería solo _topic", pm)
	}
}
