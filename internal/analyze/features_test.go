package analyze

import (
	"reflect"
	"testing"
)

func TestExtractFeatures(t *testing.T) {
	f := ExtractFeatures("check #ai and @bob https://x.co/1 #ai")

	if want := []string{"#ai", "#ai"}; !reflect.DeepEqual(f.Hashtags, want) {
		t.Errorf("hashtags = %v, want %v", f.Hashtags, want)
	}
	if want := []string{"@bob"}; !reflect.DeepEqual(f.Mentions, want) {
		t.Errorf("mentions = %v, want %v", f.Mentions, want)
	}
	if want := []string{"https://x.co/1"}; !reflect.DeepEqual(f.Links, want) {
		t.Errorf("links = %v, want %v", f.Links, want)
	}
	if f.WordCount != 6 {
		t.Errorf("word count = %d, want 6", f.WordCount)
	}
}

func TestExtractFeaturesOrdering(t *testing.T) {
	f := ExtractFeatures("#z then #a then #z again")
	if want := []string{"#z", "#a", "#z"}; !reflect.DeepEqual(f.Hashtags, want) {
		t.Errorf("hashtags = %v, want %v (first-appearance order, duplicates kept)", f.Hashtags, want)
	}
}

func TestExtractFeaturesEmpty(t *testing.T) {
	f := ExtractFeatures("")
	if len(f.Hashtags) != 0 || len(f.Mentions) != 0 || len(f.Links) != 0 {
		t.Errorf("expected no features, got %+v", f)
	}
	if f.WordCount != 0 {
		t.Errorf("word count = %d, want 0", f.WordCount)
	}

	if f = ExtractFeatures("   \n\t  "); f.WordCount != 0 {
		t.Errorf("whitespace-only word count = %d, want 0", f.WordCount)
	}
}

func TestExtractFeaturesLinks(t *testing.T) {
	f := ExtractFeatures("see http://a.example/x and https://b.example/y?q=1 end")
	want := []string{"http://a.example/x", "https://b.example/y?q=1"}
	if !reflect.DeepEqual(f.Links, want) {
		t.Errorf("links = %v, want %v", f.Links, want)
	}
}
