package nav

import "testing"

func TestBuildOnLandingPageUsesAnchors(t *testing.T) {
	items := Build("/")
	if len(items) != len(Main) {
		t.Fatalf("expected %d items, got %d", len(Main), len(items))
	}
	if items[1].Href != "#pricing" {
		t.Fatalf("expected #pricing, got %q", items[1].Href)
	}
}

func TestBuildOffLandingPageLinksBack(t *testing.T) {
	items := Build("/legal/privacy")
	if items[4].Href != "/#trial" {
		t.Fatalf("expected /#trial, got %q", items[4].Href)
	}
	for _, it := range items {
		if it.Active {
			t.Fatalf("anchor item %q should not be active", it.Href)
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := Breadcrumbs("/legal/privacy-policy", map[string]string{"/legal": "Legal"})
	if len(crumbs) != 3 {
		t.Fatalf("expected 3 crumbs, got %d", len(crumbs))
	}
	if crumbs[1].Label != "Legal" || crumbs[1].Active {
		t.Fatalf("unexpected section crumb: %+v", crumbs[1])
	}
	if crumbs[2].Label != "Privacy policy" || !crumbs[2].Active {
		t.Fatalf("unexpected leaf crumb: %+v", crumbs[2])
	}
	if home := Breadcrumbs("", nil); len(home) != 1 || !home[0].Active {
		t.Fatalf("expected single active home crumb, got %+v", home)
	}
}
