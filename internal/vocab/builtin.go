package vocab

// Builtin returns the bundled starter word list so recite mode works before
// any import. Items carry no id; the store assigns one on admission.
func Builtin() []Item {
	words := []struct {
		headword, meaning, pron, example string
		tier                             Tier
	}{
		{"안녕하세요", "hello", "annyeonghaseyo", "안녕하세요, 만나서 반갑습니다.", TierBeginner},
		{"감사합니다", "thank you", "gamsahamnida", "도와주셔서 감사합니다.", TierBeginner},
		{"네", "yes", "ne", "네, 맞아요.", TierBeginner},
		{"아니요", "no", "aniyo", "아니요, 괜찮아요.", TierBeginner},
		{"물", "water", "mul", "물 한 잔 주세요.", TierBeginner},
		{"밥", "rice; meal", "bap", "밥 먹었어요?", TierBeginner},
		{"학교", "school", "hakgyo", "학교에 가요.", TierBeginner},
		{"친구", "friend", "chingu", "친구를 만나요.", TierBeginner},
		{"사랑", "love", "sarang", "사랑해요.", TierBeginner},
		{"시간", "time", "sigan", "시간이 없어요.", TierBeginner},
		{"주말", "weekend", "jumal", "주말에 뭐 해요?", TierIntermediate},
		{"약속", "promise; appointment", "yaksok", "약속을 지켜야 해요.", TierIntermediate},
		{"준비", "preparation", "junbi", "시험 준비를 하고 있어요.", TierIntermediate},
		{"경험", "experience", "gyeongheom", "좋은 경험이었어요.", TierIntermediate},
		{"계획", "plan", "gyehoek", "여행 계획을 세웠어요.", TierIntermediate},
		{"운동", "exercise", "undong", "매일 아침 운동을 해요.", TierIntermediate},
		{"문화", "culture", "munhwa", "한국 문화에 관심이 많아요.", TierIntermediate},
		{"상황", "situation", "sanghwang", "상황이 좀 복잡해요.", TierAdvanced},
		{"환경", "environment", "hwangyeong", "환경을 보호해야 합니다.", TierAdvanced},
		{"정책", "policy", "jeongchaek", "새로운 정책이 발표되었다.", TierAdvanced},
		{"성취", "achievement", "seongchwi", "큰 성취감을 느꼈다.", TierAdvanced},
		{"갈등", "conflict", "galdeung", "세대 간의 갈등이 있다.", TierAdvanced},
	}

	items := make([]Item, 0, len(words))
	for _, w := range words {
		items = append(items, Item{
			Headword:      w.headword,
			Meaning:       w.meaning,
			Pronunciation: w.pron,
			Example:       w.example,
			Tier:          w.tier,
			Origin:        OriginBuiltin,
		})
	}
	return items
}
